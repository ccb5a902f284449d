package pages

import (
	"context"
	"io"

	"github.com/a-h/templ"

	"celebra/internal/theme"
	"celebra/internal/views/layout"
	"celebra/models"
)

// StaffData carries everything the staff composer needs for its first paint.
// The theme picker is re-populated from /api/themes once scripts run, so a
// background dropped into the folder shows up on the next page load.
type StaffData struct {
	Catalog          []theme.Theme
	Occasions        []models.Occasion
	SelectedTheme    string
	SelectedOccasion models.Occasion
	DefaultMessage   string
}

// Staff renders the celebration composer.
func Staff(data StaffData) templ.Component {
	body := templ.ComponentFunc(func(ctx context.Context, w io.Writer) error {
		if _, err := io.WriteString(w, `<main class="staff"><h1>Staff Dashboard</h1><p>Create a new celebration message.</p><form id="celebration-form">`); err != nil {
			return err
		}

		if _, err := io.WriteString(w, `<label>Guest Name<input type="text" name="guestName" placeholder="E.g. Sarah Connor" required></label>`); err != nil {
			return err
		}

		if _, err := io.WriteString(w, `<label>Occasion<select name="occasion">`); err != nil {
			return err
		}
		for _, occasion := range data.Occasions {
			if err := writeOption(w, string(occasion), string(occasion), occasion == data.SelectedOccasion); err != nil {
				return err
			}
		}
		if _, err := io.WriteString(w, `</select></label>`); err != nil {
			return err
		}

		if _, err := io.WriteString(w, `<label>Message<textarea name="message" rows="4" required>`+templ.EscapeString(data.DefaultMessage)+`</textarea></label>`); err != nil {
			return err
		}

		if _, err := io.WriteString(w, `<label>Theme<select name="themeId" id="theme-select">`); err != nil {
			return err
		}
		for _, t := range data.Catalog {
			if err := writeOption(w, t.ID, t.Name, t.ID == data.SelectedTheme); err != nil {
				return err
			}
		}
		if _, err := io.WriteString(w, `</select></label>`); err != nil {
			return err
		}

		_, err := io.WriteString(w, `<div class="actions">`+
			`<button type="button" class="secondary" id="generate">Generate message</button>`+
			`<button type="submit">Send to screens</button>`+
			`<button type="button" class="danger" id="reset">Reset displays</button>`+
			`</div></form>`+
			`<a class="exit" href="/">Exit</a>`+
			`<script>`+staffScript+`</script></main>`)
		return err
	})
	return layout.Base("Celebra — staff", body)
}

func writeOption(w io.Writer, value, label string, selected bool) error {
	attr := ""
	if selected {
		attr = " selected"
	}
	_, err := io.WriteString(w, `<option value="`+templ.EscapeString(value)+`"`+attr+`>`+templ.EscapeString(label)+`</option>`)
	return err
}

const staffScript = `
const form = document.getElementById('celebration-form');
const themeSelect = document.getElementById('theme-select');

async function refreshThemes() {
  try {
    const res = await fetch('/api/themes');
    if (!res.ok) return;
    const catalog = await res.json();
    const current = themeSelect.value;
    themeSelect.innerHTML = '';
    for (const t of catalog) {
      const opt = document.createElement('option');
      opt.value = t.id;
      opt.textContent = t.name;
      themeSelect.appendChild(opt);
    }
    themeSelect.value = catalog.some(t => t.id === current) ? current : catalog[0].id;
  } catch (err) { /* catalog keeps its server-rendered options */ }
}
refreshThemes();

document.getElementById('generate').addEventListener('click', async () => {
  const guestName = form.elements.guestName.value.trim();
  if (!guestName) return;
  const res = await fetch('/api/messages/generate', {
    method: 'POST',
    headers: {'Content-Type': 'application/json'},
    body: JSON.stringify({guestName, occasion: form.elements.occasion.value})
  });
  if (res.ok) {
    const data = await res.json();
    form.elements.message.value = data.message;
  }
});

form.addEventListener('submit', async (event) => {
  event.preventDefault();
  const payload = {
    guestName: form.elements.guestName.value,
    occasion: form.elements.occasion.value,
    message: form.elements.message.value,
    themeId: form.elements.themeId.value
  };
  const res = await fetch('/api/celebrations', {
    method: 'POST',
    headers: {'Content-Type': 'application/json'},
    body: JSON.stringify(payload)
  });
  if (res.ok) alert('Sent to all connected screens!');
});

document.getElementById('reset').addEventListener('click', async () => {
  if (!confirm('Return all displays to standby?')) return;
  await fetch('/api/celebrations/reset', {method: 'POST'});
});
`
