package errz

import (
	"fmt"
	"strings"

	"github.com/fatih/color"
)

// Formatter renders validation errors for terminal display.
type Formatter struct {
	// UseColor enables ANSI color codes in output.
	UseColor bool
}

// NewFormatter creates a new error formatter.
func NewFormatter(useColor bool) *Formatter {
	return &Formatter{UseColor: useColor}
}

var (
	colorHeader = color.New(color.FgRed, color.Bold)
	colorCode   = color.New(color.FgHiBlack)
	colorEntity = color.New(color.FgCyan)
)

// Format renders a single error in the style
//
//	error[E4002]: supertype mismatch
//	  --> com/example/Thing
//	  enum classes must extend java/lang/Enum
func (f *Formatter) Format(err *VerifyError) string {
	paint := func(c *color.Color, s string) string {
		if !f.UseColor {
			return s
		}
		return c.Sprint(s)
	}

	var b strings.Builder
	header := fmt.Sprintf("error[%s]", err.Kind.Code())
	b.WriteString(paint(colorCode, header))
	b.WriteString(": ")
	b.WriteString(paint(colorHeader, err.Kind.String()))
	b.WriteString("\n")
	if err.Entity != "" {
		b.WriteString("  --> ")
		b.WriteString(paint(colorEntity, err.Entity))
		b.WriteString("\n")
	}
	b.WriteString("  ")
	b.WriteString(err.Message)
	b.WriteString("\n")
	return b.String()
}

// FormatAll renders every VerifyError reachable from err, numbered when
// there is more than one.
func (f *Formatter) FormatAll(err error) string {
	all := All(err)
	if len(all) == 0 {
		if err == nil {
			return ""
		}
		return err.Error() + "\n"
	}
	if len(all) == 1 {
		return f.Format(all[0])
	}
	var b strings.Builder
	for i, ve := range all {
		b.WriteString(fmt.Sprintf("[%d/%d] ", i+1, len(all)))
		b.WriteString(f.Format(ve))
		if i < len(all)-1 {
			b.WriteString("\n")
		}
	}
	return b.String()
}
