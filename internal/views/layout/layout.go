package layout

import (
	"context"
	"io"

	"github.com/a-h/templ"
)

// Base wraps a page body in the shared document shell.
func Base(title string, body templ.Component) templ.Component {
	return templ.ComponentFunc(func(ctx context.Context, w io.Writer) error {
		if _, err := io.WriteString(w, `<!DOCTYPE html><html lang="en"><head><meta charset="utf-8"><meta name="viewport" content="width=device-width, initial-scale=1"><title>`+templ.EscapeString(title)+`</title><style>`+baseStyles+`</style></head><body>`); err != nil {
			return err
		}
		if err := body.Render(ctx, w); err != nil {
			return err
		}
		_, err := io.WriteString(w, `</body></html>`)
		return err
	})
}

const baseStyles = `
:root { color-scheme: dark; }
* { box-sizing: border-box; }
body { margin: 0; min-height: 100vh; background: #0b0d17; color: #f4f4f6; font-family: "Segoe UI", system-ui, sans-serif; }
a { color: inherit; }
button { cursor: pointer; font: inherit; }
.chooser { min-height: 100vh; display: flex; align-items: center; justify-content: center; gap: 2rem; flex-wrap: wrap; padding: 2rem; }
.chooser a { display: flex; flex-direction: column; gap: 1rem; width: 20rem; padding: 3rem 2rem; border: 1px solid rgba(255,255,255,.12); border-radius: 1rem; background: #161a2b; text-decoration: none; text-align: center; }
.chooser a:hover { border-color: rgba(255,255,255,.4); }
.chooser p { color: rgba(255,255,255,.55); margin: 0; }
.staff { max-width: 44rem; margin: 0 auto; padding: 2rem 1.5rem 4rem; display: flex; flex-direction: column; gap: 1rem; }
.staff label { display: flex; flex-direction: column; gap: .4rem; font-size: .9rem; color: rgba(255,255,255,.8); }
.staff input, .staff select, .staff textarea { padding: .7rem; border-radius: .6rem; border: 1px solid rgba(255,255,255,.15); background: #12152a; color: inherit; }
.staff .actions { display: flex; gap: .8rem; flex-wrap: wrap; }
.staff button { padding: .7rem 1.4rem; border-radius: .6rem; border: none; background: #4f46e5; color: white; }
.staff button.secondary { background: #2a2f45; }
.staff button.danger { background: #7f1d1d; }
.exit { position: fixed; bottom: 1rem; left: 1rem; font-size: .75rem; color: rgba(255,255,255,.35); }
.display { min-height: 100vh; display: flex; align-items: center; justify-content: center; background-size: cover; background-position: center; position: relative; }
.display .overlay { position: absolute; inset: 0; }
.display .card { position: relative; text-align: center; padding: 2rem; max-width: 60rem; }
.display h1 { font-size: 4rem; margin: 0 0 1rem; }
.display p { font-size: 1.6rem; color: rgba(255,255,255,.85); }
.display .standby { font-size: 1.2rem; letter-spacing: .3em; text-transform: uppercase; color: rgba(255,255,255,.45); }
`
