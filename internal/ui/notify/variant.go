// Package notify defines how toast notifications look and behave: the icon and
// color for each severity variant, and the presentation policy handed to the
// toast renderer. Everything here is fixed at compile time.
package notify

// Icon identifies the symbol drawn next to a toast by its icon set name
type Icon string

// Icons used by the variants
const (
	IconCheckmarkCircle Icon = "eva:checkmark-circle-2-fill"
	IconInfo            Icon = "eva:info-fill"
	IconAlertTriangle   Icon = "eva:alert-triangle-fill"
	IconAlertCircle     Icon = "eva:alert-circle-fill"
)

// Glyph returns the terminal rendering of the icon
func (i Icon) Glyph() string {
	switch i {
	case IconCheckmarkCircle:
		return "✔"
	case IconInfo:
		return "ℹ"
	case IconAlertTriangle:
		return "⚠"
	case IconAlertCircle:
		return "!"
	default:
		return "•"
	}
}

// ColorToken names a palette entry; the renderer resolves it to a terminal color
type ColorToken string

const (
	ColorInfo    ColorToken = "info"
	ColorSuccess ColorToken = "success"
	ColorWarning ColorToken = "warning"
	ColorError   ColorToken = "error"
)

// Presentation is the icon and color a toast is drawn with
type Presentation struct {
	Icon  Icon
	Color ColorToken
}

// Variant is the severity of a toast. The set is closed: only Info, Success,
// Warning and Error exist, and each must provide its own Presentation.
type Variant interface {
	String() string
	Presentation() Presentation
	isVariant()
}

type infoVariant struct{}

func (infoVariant) String() string { return "info" }
func (infoVariant) Presentation() Presentation {
	return Presentation{Icon: IconAlertCircle, Color: ColorInfo}
}
func (infoVariant) isVariant() {}

type successVariant struct{}

func (successVariant) String() string { return "success" }
func (successVariant) Presentation() Presentation {
	return Presentation{Icon: IconCheckmarkCircle, Color: ColorSuccess}
}
func (successVariant) isVariant() {}

type warningVariant struct{}

func (warningVariant) String() string { return "warning" }
func (warningVariant) Presentation() Presentation {
	return Presentation{Icon: IconAlertTriangle, Color: ColorWarning}
}
func (warningVariant) isVariant() {}

type errorVariant struct{}

func (errorVariant) String() string { return "error" }
func (errorVariant) Presentation() Presentation {
	return Presentation{Icon: IconInfo, Color: ColorError}
}
func (errorVariant) isVariant() {}

// The four variants. Presentation belongs to the variant types, so these
// values are handles only; rebinding one does not change any mapping.
var (
	Info    Variant = infoVariant{}
	Success Variant = successVariant{}
	Warning Variant = warningVariant{}
	Error   Variant = errorVariant{}
)

// Variants returns every variant in severity order
func Variants() []Variant {
	return []Variant{infoVariant{}, successVariant{}, warningVariant{}, errorVariant{}}
}
