package analysis

// Label is a weighted classification label returned by the image annotator.
type Label struct {
	Description string  `json:"description"`
	Score       float64 `json:"score"`
}

// Object is a weighted localized object returned by the image annotator.
type Object struct {
	Name  string  `json:"name"`
	Score float64 `json:"score"`
}

// Candidate is a named, scored food guess extracted from raw annotator
// output, before translation and validation. Name is in the annotator's
// source language.
type Candidate struct {
	Name  string
	Score float64
}

// Item is one resolved food item in the display language. Field names are
// part of the external wire contract and must not change.
type Item struct {
	Name               string  `json:"nome"`
	CaloriesPerPortion int     `json:"caloriasPorPorcao"`
	PortionDescription string  `json:"porcaoDescricao"`
	Confidence         float64 `json:"confianca"`
}

// Result is the terminal output of one pipeline run.
type Result struct {
	Items   []Item `json:"itens"`
	Message string `json:"mensagem"`
}

// User-facing status messages. Callers distinguish "no food" from "food but
// no catalog match" by these being distinct strings.
const (
	MsgNoFood = "A imagem não parece conter alimentos (ou não foi possível detectar comida com confiança). " +
		"Tente uma foto mais próxima e nítida do prato."
	MsgItemsFound = "Itens estimados via Vision + tradução + base local. " +
		"Confirme o que faz sentido e ajuste a porção."
	MsgNoCatalogMatch = "Detectei que há comida na imagem, mas não consegui mapear para alimentos da sua base. " +
		"Tente uma foto mais próxima ou ajuste o item manualmente."
)
