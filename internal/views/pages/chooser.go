package pages

import (
	"context"
	"io"

	"github.com/a-h/templ"

	"celebra/internal/views/layout"
)

// Chooser is the landing surface where a device picks its role. The links
// carry the role in the shareable URL, so the resulting address can be copied
// to any other device to reproduce the same role.
func Chooser() templ.Component {
	body := templ.ComponentFunc(func(ctx context.Context, w io.Writer) error {
		_, err := io.WriteString(w, `<main class="chooser">`+
			`<a href="/?mode=staff"><h2>Staff Tablet</h2><p>Control the messages and themes displayed on the screens.</p></a>`+
			`<a href="/?mode=display"><h2>Display Screen</h2><p>Set this device as a digital signage display to receive messages.</p></a>`+
			`</main>`)
		return err
	})
	return layout.Base("Celebra — choose a mode", body)
}
