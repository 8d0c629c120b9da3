package render

import (
	"encoding/json"
	"fmt"
	"io"
	"strings"

	"github.com/ethereum/go-ethereum/common"
	"github.com/fatih/color"
	"github.com/jedib0t/go-pretty/v6/table"
	"github.com/jedib0t/go-pretty/v6/text"
	"github.com/trebuchet-org/ecdbg/internal/domain"
	"github.com/trebuchet-org/ecdbg/internal/domain/models"
	"golang.org/x/text/cases"
	"golang.org/x/text/language"
)

var (
	sectionHeaderStyle = color.New(color.Bold, color.FgHiWhite)
	labelStyle         = color.New(color.Faint)
	addressStyle       = color.New(color.FgWhite)
	okStyle            = color.New(color.FgGreen)
	badStyle           = color.New(color.FgRed)
	warnStyle          = color.New(color.FgYellow)

	titleCaser = cases.Title(language.English)
)

// FormatWarning formats a warning message with the warning icon
func FormatWarning(message string) string {
	return warnStyle.Sprintf("⚠️  %s", message)
}

// FormatError formats an error message with the error icon
func FormatError(message string) string {
	parts := strings.Split(message, ": ")
	msg := parts[len(parts)-1]

	if len(msg) > 0 {
		msg = strings.ToUpper(msg[:1]) + msg[1:]
	}

	return badStyle.Sprintf("❌ %s", msg)
}

// FormatSuccess formats a success message with the success icon
func FormatSuccess(message string) string {
	return okStyle.Sprintf("✅ %s", message)
}

// Title converts an enum style value such as NATIVE_TOKEN_VAULT to "Native Token Vault"
func Title(value string) string {
	return titleCaser.String(strings.ToLower(strings.ReplaceAll(value, "_", " ")))
}

// RenderJSON writes v as indented JSON
func RenderJSON(out io.Writer, v any) error {
	data, err := json.MarshalIndent(v, "", "  ")
	if err != nil {
		return err
	}
	_, err = fmt.Fprintln(out, string(data))
	return err
}

// SnapshotBook names every contract of a snapshot for display
func SnapshotBook(snapshot *models.Snapshot) *domain.AddressBook {
	book := domain.NewAddressBook().
		With(snapshot.RegistryRoot, "Bridgehub")

	if router, err := snapshot.AssetRouter(); err == nil {
		book = book.With(router.Address, "Shared Bridge")
		if router.NativeTokenVault != (common.Address{}) {
			book = book.With(router.NativeTokenVault, "Native Token Vault")
		}
		for _, asset := range router.Assets {
			if asset.Handler.Kind == models.VaultBackedHandler && asset.Handler.TokenName != "" {
				if _, known := book.Name(asset.Handler.TokenAddress); !known {
					book = book.With(asset.Handler.TokenAddress, asset.Handler.TokenName)
				}
			}
		}
	}
	for _, manager := range snapshot.Managers() {
		book = book.With(manager.Address, "CTM")
		if manager.ValidatorTimelock != (common.Address{}) {
			book = book.With(manager.ValidatorTimelock, "Validator Timelock")
		}
	}
	for _, id := range snapshot.ChainIDs() {
		book = book.With(snapshot.Chains[id].StateTransition, fmt.Sprintf("ST %d", id))
	}
	return book
}

// newTable creates a borderless table in the style used across all renderers
func newTable(out io.Writer) table.Writer {
	t := table.NewWriter()
	t.SetOutputMirror(out)
	t.SetStyle(table.StyleLight)
	t.Style().Options.SeparateRows = false
	t.Style().Options.DrawBorder = false
	t.Style().Options.SeparateColumns = false
	t.Style().Format.Header = text.FormatDefault
	t.Style().Box.PaddingRight = "   "
	t.Style().Box.PaddingLeft = "  "
	return t
}

// section prints a bold section header
func section(out io.Writer, title string) {
	fmt.Fprintln(out)
	fmt.Fprintln(out, sectionHeaderStyle.Sprint(title))
}

// field prints an aligned label and value
func field(out io.Writer, label string, value any) {
	fmt.Fprintf(out, "  %s %v\n", labelStyle.Sprintf("%-22s", label+":"), value)
}
