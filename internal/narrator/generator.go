package narrator

import (
	"context"
	"encoding/json"
	"fmt"
	"strings"

	"github.com/google/generative-ai-go/genai"
	"google.golang.org/api/option"

	"github.com/wonny/wbsight/internal/contracts"
	"github.com/wonny/wbsight/pkg/config"
	"github.com/wonny/wbsight/pkg/logger"
)

// disabledNotice replaces narration when no LLM is configured. The
// analysis report itself is never blocked on narration.
const disabledNotice = "LLM-генератор не активен: отчет доступен только в виде структурированных данных."

// Generator narrates analysis reports through the Gemini API
// ⭐ SSOT: LLM 호출은 이 패키지에서만
type Generator struct {
	client *genai.Client
	model  string
	logger *logger.Logger
}

// New creates a narration generator. A missing key or disabled flag
// yields a generator that returns stub text instead of calling out.
func New(ctx context.Context, cfg config.GeminiConfig, log *logger.Logger) (*Generator, error) {
	if !cfg.Enabled || cfg.APIKey == "" {
		log.Warn("Narration disabled: no Gemini API key configured")
		return &Generator{logger: log, model: cfg.Model}, nil
	}

	client, err := genai.NewClient(ctx, option.WithAPIKey(cfg.APIKey))
	if err != nil {
		return nil, fmt.Errorf("create gemini client: %w", err)
	}

	return &Generator{
		client: client,
		model:  cfg.Model,
		logger: log,
	}, nil
}

// Close releases the underlying client
func (g *Generator) Close() {
	if g.client != nil {
		_ = g.client.Close()
	}
}

// Enabled reports whether a real LLM backs this generator
func (g *Generator) Enabled() bool {
	return g.client != nil
}

// ComparativeReport builds a hybrid narration for one SKU: exact
// period-1 metrics plus a prebuilt Markdown comparison table, with the
// model asked only for conclusions. Narration failures degrade to an
// explanatory string; they never fail the analysis.
func (g *Generator) ComparativeReport(ctx context.Context, sku string, report *contracts.SkuReport, p1, p2 contracts.PeriodWindow) string {
	if report == nil || report.Error != "" {
		return fmt.Sprintf("### Анализ для %s не удался.", sku)
	}
	if !g.Enabled() {
		return disabledNotice
	}

	p1Sales := report.Sales[contracts.Period1]
	p2Sales := report.Sales[contracts.Period2]

	table := comparisonTable(p1, p2, []tableRow{
		{"Заказано, шт", float64(p1Sales.UnitsOrdered), float64(p2Sales.UnitsOrdered), !p1Sales.Failed(), !p2Sales.Failed()},
		{"Выручка (общая), руб", p1Sales.GrossRevenueRub, p2Sales.GrossRevenueRub, !p1Sales.Failed(), !p2Sales.Failed()},
	})

	metrics := map[string]interface{}{
		"card":   report.Card,
		"sales":  p1Sales,
		"profit": report.Profit,
		"reviews": map[string]interface{}{
			"average_rating": report.Reviews.AverageRating,
			"reviews_total":  report.Reviews.ReviewsTotal,
		},
	}
	metricsJSON, _ := json.MarshalIndent(metrics, "", "  ")

	prompt := fmt.Sprintf(`Ты — ведущий аналитик маркетплейсов. Напиши отчет для руководителя по товару %s.

ПРАВИЛА:
1. Заполни детальный отчет по основному периоду (%s), используя ТОЛЬКО данные из блока ДЕТАЛЬНЫЕ МЕТРИКИ.
2. Вставь готовую СРАВНИТЕЛЬНУЮ ТАБЛИЦУ без изменений.
3. В разделе "Ключевые выводы" объясни динамику из таблицы и дай 1-2 конкретные рекомендации.

СРАВНИТЕЛЬНАЯ ТАБЛИЦА:
%s

ДЕТАЛЬНЫЕ МЕТРИКИ:
%s`, sku, p1.Label(), table, string(metricsJSON))

	return g.generate(ctx, prompt)
}

// AnswerQuestion answers a follow-up question about one aspect of a
// previously cached report.
func (g *Generator) AnswerQuestion(ctx context.Context, sku, aspect string, aspectData interface{}, question string) string {
	if !g.Enabled() {
		return disabledNotice
	}

	dataJSON, _ := json.MarshalIndent(aspectData, "", "  ")

	prompt := fmt.Sprintf(`Ты — data-аналитик. Ответь кратко и по сути на вопрос по аспекту '%s' товара '%s'.

Вопрос: %s

Данные:
%s`, aspect, sku, question, string(dataJSON))

	return g.generate(ctx, prompt)
}

func (g *Generator) generate(ctx context.Context, prompt string) string {
	model := g.client.GenerativeModel(g.model)
	resp, err := model.GenerateContent(ctx, genai.Text(prompt))
	if err != nil {
		g.logger.WithError(err).Error("Narration generation failed")
		return fmt.Sprintf("Не удалось сгенерировать отчет: %v", err)
	}

	return responseText(resp)
}

// responseText flattens the first candidate's text parts
func responseText(resp *genai.GenerateContentResponse) string {
	if resp == nil || len(resp.Candidates) == 0 || resp.Candidates[0].Content == nil {
		return ""
	}

	var sb strings.Builder
	for _, part := range resp.Candidates[0].Content.Parts {
		if text, ok := part.(genai.Text); ok {
			sb.WriteString(string(text))
		}
	}
	return sb.String()
}

// tableRow is one metric line in the comparison table. The ok flags
// mark whether each period's value is real data or an error marker.
type tableRow struct {
	Name   string
	P1, P2 float64
	P1OK   bool
	P2OK   bool
}

// comparisonTable renders a Markdown table with absolute and percent
// deltas, guarding against missing data and zero denominators.
func comparisonTable(p1, p2 contracts.PeriodWindow, rows []tableRow) string {
	var sb strings.Builder
	fmt.Fprintf(&sb, "| Показатель | Период 1 (%s) | Период 2 (%s) | Динамика (Δ) |\n", p1.Label(), p2.Label())
	sb.WriteString("|:---|---:|---:|:---|\n")

	for _, row := range rows {
		p1Val, p2Val, delta := "N/A", "N/A", "N/A"
		if row.P1OK {
			p1Val = trimNumber(row.P1)
		}
		if row.P2OK {
			p2Val = trimNumber(row.P2)
		}
		if row.P1OK && row.P2OK {
			abs := row.P1 - row.P2
			perc := 100.0
			if row.P2 != 0 {
				perc = (row.P1/row.P2 - 1) * 100
			}
			sign := ""
			if abs >= 0 {
				sign = "+"
			}
			delta = fmt.Sprintf("%s%s (%+.1f%%)", sign, trimNumber(abs), perc)
		}
		fmt.Fprintf(&sb, "| %s | %s | %s | %s |\n", row.Name, p1Val, p2Val, delta)
	}

	return sb.String()
}

func trimNumber(v float64) string {
	s := fmt.Sprintf("%.2f", v)
	s = strings.TrimRight(s, "0")
	return strings.TrimRight(s, ".")
}
