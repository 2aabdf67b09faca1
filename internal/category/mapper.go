// Package category переводит метки сервиса распознавания во внутренние коды категорий
package category

// Метки, которые возвращает сервис распознавания
const (
	LabelPothole  = "bache"
	LabelCrack    = "grieta"
	LabelManhole  = "alcantarilla"
	LabelGarbage  = "basura"
	LabelLighting = "iluminacion"
	LabelOther    = "otro"
)

// Внутренние коды категорий (incident_categories.code)
const (
	CodePothole  = "POTHOLE"
	CodeCrack    = "CRACK"
	CodeManhole  = "MANHOLE"
	CodeGarbage  = "GARBAGE"
	CodeLighting = "LIGHTING"
	CodeOther    = "OTHER"
)

type Priority string

const (
	PriorityLow    Priority = "low"
	PriorityMedium Priority = "medium"
	PriorityHigh   Priority = "high"
)

const (
	highConfidence   = 0.90
	mediumConfidence = 0.70
)

var labelToCode = map[string]string{
	LabelPothole:  CodePothole,
	LabelCrack:    CodeCrack,
	LabelManhole:  CodeManhole,
	LabelGarbage:  CodeGarbage,
	LabelLighting: CodeLighting,
	LabelOther:    CodeOther,
}

// Map возвращает внутренний код для метки распознавания.
// ok == false означает, что метка не входит в известный набор.
func Map(label string) (code string, ok bool) {
	code, ok = labelToCode[label]
	return code, ok
}

// PriorityFor классифицирует уверенность модели; граничные значения относятся к более высокому уровню
func PriorityFor(confidence float64) Priority {
	switch {
	case confidence >= highConfidence:
		return PriorityHigh
	case confidence >= mediumConfidence:
		return PriorityMedium
	default:
		return PriorityLow
	}
}
