package sheet

// The enumerations below mirror the Sheets API wire values.

// BorderStyle is the line style for cell borders.
type BorderStyle string

const (
	BorderDotted      BorderStyle = "DOTTED"
	BorderDashed      BorderStyle = "DASHED"
	BorderSolid       BorderStyle = "SOLID"
	BorderSolidMedium BorderStyle = "SOLID_MEDIUM"
	BorderSolidThick  BorderStyle = "SOLID_THICK"
	BorderDouble      BorderStyle = "DOUBLE"
	BorderNone        BorderStyle = "NONE"
)

// MergeType selects how a cell range is merged.
type MergeType string

const (
	MergeAll     MergeType = "MERGE_ALL"
	MergeColumns MergeType = "MERGE_COLUMNS"
	MergeRows    MergeType = "MERGE_ROWS"
)

// ThemeColor is a colour from the spreadsheet theme.
type ThemeColor string

const (
	ThemeText       ThemeColor = "TEXT"
	ThemeBackground ThemeColor = "BACKGROUND"
	ThemeAccent1    ThemeColor = "ACCENT1"
	ThemeAccent2    ThemeColor = "ACCENT2"
	ThemeAccent3    ThemeColor = "ACCENT3"
	ThemeAccent4    ThemeColor = "ACCENT4"
	ThemeAccent5    ThemeColor = "ACCENT5"
	ThemeAccent6    ThemeColor = "ACCENT6"
	ThemeLink       ThemeColor = "LINK"
)

// HorizontalAlign is the horizontal alignment of cell content.
type HorizontalAlign string

const (
	AlignLeft   HorizontalAlign = "LEFT"
	AlignCenter HorizontalAlign = "CENTER"
	AlignRight  HorizontalAlign = "RIGHT"
)

// VerticalAlign is the vertical alignment of cell content.
type VerticalAlign string

const (
	AlignTop    VerticalAlign = "TOP"
	AlignMiddle VerticalAlign = "MIDDLE"
	AlignBottom VerticalAlign = "BOTTOM"
)

// WrapStrategy determines how overflowing cell text is displayed.
type WrapStrategy string

const (
	WrapOverflow WrapStrategy = "OVERFLOW_CELL"
	WrapLegacy   WrapStrategy = "LEGACY_WRAP"
	WrapClip     WrapStrategy = "CLIP"
	Wrap         WrapStrategy = "WRAP"
)

// TextDirection is the text direction of cell content.
type TextDirection string

const (
	LeftToRight TextDirection = "LEFT_TO_RIGHT"
	RightToLeft TextDirection = "RIGHT_TO_LEFT"
)

// HyperlinkDisplay determines how hyperlinks are rendered.
type HyperlinkDisplay string

const (
	HyperlinkLinked    HyperlinkDisplay = "LINKED"
	HyperlinkPlainText HyperlinkDisplay = "PLAIN_TEXT"
)

// NumberFormatType is the kind of number format applied to a cell.
type NumberFormatType string

const (
	NumberFormatText       NumberFormatType = "TEXT"
	NumberFormatNumber     NumberFormatType = "NUMBER"
	NumberFormatPercent    NumberFormatType = "PERCENT"
	NumberFormatCurrency   NumberFormatType = "CURRENCY"
	NumberFormatDate       NumberFormatType = "DATE"
	NumberFormatTime       NumberFormatType = "TIME"
	NumberFormatDateTime   NumberFormatType = "DATE_TIME"
	NumberFormatScientific NumberFormatType = "SCIENTIFIC"
)
