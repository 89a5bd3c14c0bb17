package modes

import "waterdeck/internal/ui/input/types"

type SearchMode struct {
	TextInputMode
}

func NewSearchMode() *SearchMode {
	return &SearchMode{
		TextInputMode: NewTextInputMode(types.ModeSearch, "search"),
	}
}
