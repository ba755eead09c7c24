package main

import (
	"context"
	"errors"
	"fmt"
	"io"
	"slices"
	"strings"
	"time"

	"github.com/spf13/cobra"

	"github.com/mvolkova/finsight/internal/cli"
	"github.com/mvolkova/finsight/internal/config"
	"github.com/mvolkova/finsight/internal/ledger"
	"github.com/mvolkova/finsight/internal/reportlog"
	"github.com/mvolkova/finsight/internal/timeutil"
)

func menuCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "menu",
		Short: "Interactive transaction analysis shell",
		Long: `A menu-driven shell over the same operations as the subcommands:
main page, services and reports. Bad input reprompts, never crashes.`,
		RunE: func(cmd *cobra.Command, _ []string) error {
			cfg, err := config.Load()
			if err != nil {
				return err
			}
			m := &menu{
				cfg:    cfg,
				prompt: cli.NewPrompter(cmd.InOrStdin(), cmd.OutOrStdout()),
				ctx:    cmd.Context(),
			}
			return m.run()
		},
	}
}

type menu struct {
	cfg    *config.Config
	prompt *cli.Prompter
	ctx    context.Context
}

func (m *menu) run() error {
	m.prompt.Say(cli.FormatTitle("Рады приветствовать!"))
	for {
		m.prompt.Say("\nВы находитесь в главном меню приложения, анализирующего транзакции.\n" +
			"Выберите раздел:\n" +
			"  1. Главная страница\n" +
			"  2. Сервисы\n" +
			"  3. Отчёты\n" +
			"  0. Выйти из приложения")
		choice, err := m.prompt.Ask("Введите 1, 2, 3 или 0")
		if errors.Is(err, io.EOF) {
			return nil
		}
		if err != nil {
			return err
		}

		switch choice {
		case "1":
			m.mainPage()
		case "2":
			if done := m.services(); done {
				return nil
			}
		case "3":
			if done := m.reports(); done {
				return nil
			}
		case "0":
			return nil
		default:
			m.prompt.Say(cli.FormatError("Неверный ввод"))
		}
	}
}

func (m *menu) mainPage() {
	date, err := m.prompt.Ask("Введите дату в формате YYYY-MM-DD HH:MM:SS")
	if err != nil {
		return
	}
	if _, err := timeutil.ParseInputTime(date); err != nil {
		m.prompt.Say(cli.FormatError("Неправильный формат даты"))
		return
	}

	d := newBuilder(m.cfg).Build(m.ctx, date)

	m.prompt.Say("\n" + cli.FormatTitle(d.Greeting) + "\n")
	if d.Cards.Failed() {
		m.prompt.Say(cli.FormatError(d.Cards.Err))
	} else {
		m.prompt.Say(cli.FormatInfo("Ваши карты:"))
		for _, card := range d.Cards.Value {
			m.prompt.Say(fmt.Sprintf("  Последние цифры: %s  Расходы за месяц: %.2f  Кешбек: %d",
				card.LastDigits, card.TotalSpent, card.Cashback))
		}
	}

	for _, section := range []struct {
		title string
		value any
	}{
		{"Топ-5 транзакций по сумме платежа:", d.TopTransactions},
		{"Курс валют:", d.CurrencyRates},
		{"Стоимость акций:", d.StockPrices},
	} {
		out, err := renderJSON(section.value)
		if err != nil {
			m.prompt.Say(cli.FormatError(err.Error()))
			continue
		}
		m.prompt.Say(cli.FormatInfo(section.title))
		m.prompt.Say(out)
	}
}

func (m *menu) services() (quit bool) {
	for {
		m.prompt.Say("\nРаздел «Сервисы»:\n" +
			"  1. Поиск переводов физическим лицам\n" +
			"  *. Выход в главное меню\n" +
			"  0. Выход из программы")
		choice, err := m.prompt.Ask("Введите 1, * или 0")
		if err != nil {
			return true
		}

		switch choice {
		case "1":
			led, err := loadLedger(m.cfg)
			if err != nil {
				m.prompt.Say(cli.FormatError(err.Error()))
				return false
			}
			m.prompt.Say(ledger.SearchTransfersToPeople(led))
			return false
		case "*":
			return false
		case "0":
			return true
		default:
			m.prompt.Say(cli.FormatError("Неверный ввод"))
		}
	}
}

func (m *menu) reports() (quit bool) {
	for {
		m.prompt.Say("\nРаздел «Отчёты»:\n" +
			"  1. Траты в категории за 3 месяца, предшествующих дате\n" +
			"  *. Выход в главное меню\n" +
			"  0. Выход из программы")
		choice, err := m.prompt.Ask("Введите 1, * или 0")
		if err != nil {
			return true
		}

		switch choice {
		case "1":
			m.categoryReport()
			return false
		case "*":
			return false
		case "0":
			return true
		default:
			m.prompt.Say(cli.FormatError("Неверный ввод"))
		}
	}
}

func (m *menu) categoryReport() {
	led, err := loadLedger(m.cfg)
	if err != nil {
		m.prompt.Say(cli.FormatError(err.Error()))
		return
	}

	categories, err := ledger.Categories(led)
	if err != nil {
		m.prompt.Say(cli.FormatError(err.Error()))
		return
	}
	m.prompt.Say(cli.FormatInfo("Доступные категории: " + strings.Join(categories, ", ")))

	if from, to, err := ledger.PaymentDateRange(led); err == nil {
		m.prompt.Say(cli.FormatInfo(fmt.Sprintf("Доступны данные с %s по %s",
			from.Format(timeutil.InputLayout), to.Format(timeutil.InputLayout))))
	}

	category, err := m.prompt.Ask("Введите название категории")
	if err != nil {
		return
	}
	if !slices.Contains(categories, category) {
		m.prompt.Say(cli.FormatError("Указанной категории не существует."))
		return
	}

	date, err := m.prompt.Ask("Введите дату в формате YYYY-MM-DD HH:MM:SS")
	if err != nil {
		return
	}
	if _, err := timeutil.ParseInputTime(date); err != nil {
		m.prompt.Say(cli.FormatError("Неправильный формат даты"))
		return
	}

	report := reportlog.Logged(m.cfg.ReportLogPath, ledger.SpendingByCategory)
	m.prompt.Say(report(led, category, date, time.Now))
}
