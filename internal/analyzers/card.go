package analyzers

import (
	"context"
	"fmt"
	"sort"
	"strings"

	"github.com/wonny/wbsight/internal/contracts"
)

// Content-quality thresholds for a product card
const (
	minTitleLen       = 20
	minDescriptionLen = 300
	minPhotos         = 5
	minVideos         = 1
)

// brandMissing is the stand-in shown when the card has no brand
const brandMissing = "нет данных"

// attentionWords are the title triggers buyers respond to; at least
// one is expected in a well-optimized title.
var attentionWords = []string{
	"новинка", "хит", "подарок", "premium", "top", "выбор", "лучший", "original",
}

// CharacteristicsSource supplies the required attribute names for a
// product category. Injected so the analyzer stays pure: the memoizing
// cache lives at the fetch layer.
type CharacteristicsSource interface {
	Required(ctx context.Context, subjectID int64) map[string]bool
}

// CardAnalyzer scores content quality of one enriched product card
type CardAnalyzer struct {
	charcs CharacteristicsSource
}

// NewCardAnalyzer creates a card analyzer backed by a characteristics source
func NewCardAnalyzer(charcs CharacteristicsSource) *CardAnalyzer {
	return &CardAnalyzer{charcs: charcs}
}

// Analyze runs the content-quality checklist and builds the
// recommendation list, one fixed suggestion per failed check, in a
// fixed order.
func (a *CardAnalyzer) Analyze(ctx context.Context, product *contracts.Product) contracts.CardResult {
	if product == nil {
		return contracts.CardResult{Fault: contracts.Failf("product card data not provided")}
	}

	name := product.DisplayName()
	brand := product.Brand
	if brand == "" {
		brand = brandMissing
	}

	basePrice := product.BasePriceRub
	discount := product.DiscountPercent
	salePrice := basePrice * (1 - discount/100)

	// Checklist
	titleOK := len([]rune(name)) >= minTitleLen
	descOK := len([]rune(product.Description)) >= minDescriptionLen
	brandOK := brand != brandMissing
	clickbaitOK := hasAttentionWord(name)
	photosOK := product.PhotosCount >= minPhotos
	videosOK := product.VideosCount >= minVideos

	var required map[string]bool
	if product.SubjectID != 0 && a.charcs != nil {
		required = a.charcs.Required(ctx, product.SubjectID)
	}
	missing := missingCharacteristics(required, product.Characteristics)

	var recommendations []string
	if !brandOK {
		recommendations = append(recommendations, "Заполните поле 'Бренд' — это повышает доверие покупателей.")
	}
	if !titleOK {
		recommendations = append(recommendations, "Удлините название до 20+ символов, добавив ключевые слова.")
	}
	if !clickbaitOK {
		recommendations = append(recommendations, "Добавьте в название УТП или триггеры ('новинка', 'хит', 'подарок', 'лучший' и т.п.).")
	}
	if !descOK {
		recommendations = append(recommendations, "Добавьте подробное описание (не менее 300 символов), сделайте акцент на выгодах и сценариях применения.")
	}
	if !photosOK {
		recommendations = append(recommendations, "Добавьте минимум 5 качественных фотографий (в т.ч. 'лайфстайл', упаковку, состав, использование).")
	}
	if !videosOK {
		recommendations = append(recommendations, "Загрузите хотя бы одно видео для повышения доверия и кликабельности.")
	}
	if len(missing) > 0 {
		recommendations = append(recommendations,
			fmt.Sprintf("Заполните обязательные атрибуты: %s.", strings.Join(missing, ", ")))
	}
	if len(recommendations) == 0 {
		recommendations = append(recommendations, "Карточка товара оформлена отлично — высокая вероятность хороших продаж!")
	}
	if name == "NO_NAME" {
		// Listings from the legacy seller cabinet come through with no
		// card content at all; tell the seller instead of guessing.
		recommendations = append(recommendations,
			"Нет информации по карточке товара — вероятно, она создана в старой версии Личного кабинета WB. "+
				"Для подробного анализа создайте или обновите карточку в новом Личном кабинете Wildberries.")
	}

	return contracts.CardResult{
		Name:            name,
		Brand:           brand,
		BasePriceRub:    round2(basePrice),
		SalePriceRub:    round2(salePrice),
		CurrentPriceRub: round2(salePrice),
		DiscountPercent: discount,
		StockQuantity:   product.Quantity,
		Warning:         product.Warning,
		Recommendations: recommendations,
	}
}

func hasAttentionWord(name string) bool {
	lower := strings.ToLower(name)
	for _, w := range attentionWords {
		if strings.Contains(lower, w) {
			return true
		}
	}
	return false
}

// missingCharacteristics returns required attribute names the card
// does not carry, sorted for deterministic output.
func missingCharacteristics(required map[string]bool, present []contracts.Characteristic) []string {
	if len(required) == 0 {
		return nil
	}

	have := make(map[string]bool, len(present))
	for _, c := range present {
		have[c.Name] = true
	}

	var missing []string
	for name := range required {
		if !have[name] {
			missing = append(missing, name)
		}
	}
	sort.Strings(missing)

	return missing
}
