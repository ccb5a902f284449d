package pages

import (
	"context"
	"io"

	"github.com/a-h/templ"

	"celebra/internal/views/layout"
)

// Display renders the full-screen celebration surface. All state arrives over
// the SSE stream; the page itself is static.
func Display() templ.Component {
	body := templ.ComponentFunc(func(ctx context.Context, w io.Writer) error {
		_, err := io.WriteString(w, `<main class="display" id="display">`+
			`<div class="overlay" id="overlay"></div>`+
			`<div class="card">`+
			`<div class="standby" id="standby">Waiting for celebrations</div>`+
			`<h1 id="guest" hidden></h1>`+
			`<p id="message" hidden></p>`+
			`</div>`+
			`<a class="exit" href="/">Exit</a>`+
			`<script>`+displayScript+`</script></main>`)
		return err
	})
	return layout.Base("Celebra — display", body)
}

const displayScript = `
const surface = document.getElementById('display');
const overlay = document.getElementById('overlay');
const standby = document.getElementById('standby');
const guest = document.getElementById('guest');
const message = document.getElementById('message');

let catalog = [];

// Overlay tokens carried in the theme catalog, mapped to plain CSS.
const overlays = {
  'bg-background-dark/90': 'rgba(11,13,23,.9)',
  'bg-black/60': 'rgba(0,0,0,.6)',
  'bg-black/50': 'rgba(0,0,0,.5)',
  'bg-black/40': 'rgba(0,0,0,.4)',
  'bg-indigo-950/80': 'rgba(30,27,75,.8)'
};

function resolveTheme(id) {
  return catalog.find(t => t.id === id) || catalog[0];
}

function show(state) {
  if (!state || !state.active || !state.celebration) {
    standby.hidden = false;
    guest.hidden = true;
    message.hidden = true;
    surface.style.backgroundImage = '';
    overlay.style.background = '';
    return;
  }
  const c = state.celebration;
  standby.hidden = true;
  guest.hidden = false;
  message.hidden = false;
  guest.textContent = c.guestName;
  message.textContent = c.message;
  if (catalog.length > 0) {
    const theme = resolveTheme(c.themeId);
    surface.style.backgroundImage = 'url(' + theme.backgroundUrl + ')';
    overlay.style.background = overlays[theme.overlayColor] || 'rgba(0,0,0,.4)';
  }
}

async function start() {
  try {
    const res = await fetch('/api/themes');
    if (res.ok) catalog = await res.json();
  } catch (err) { /* built-ins only; stream still works */ }

  const source = new EventSource('/api/celebrations/stream');
  source.onmessage = (event) => show(JSON.parse(event.data));
  window.addEventListener('pagehide', () => source.close());
}
start();
`
