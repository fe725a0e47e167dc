package document

import (
	"github.com/mdmaestro/mdmaestro/key"
	"github.com/mdmaestro/mdmaestro/log"
	"github.com/mdmaestro/mdmaestro/pdf"
	"github.com/mdmaestro/mdmaestro/render"
	"github.com/mdmaestro/mdmaestro/theme"
	"github.com/spf13/viper"
)

// FromConfig returns the options that seed a session from the global configuration.
func FromConfig() []Option {
	t, err := theme.Parse(viper.GetString(key.RenderTheme))
	if err != nil {
		log.Warn(err)
		t = theme.Default
	}

	return []Option{
		WithTheme(t),
		WithFontSize(viper.GetInt(key.RenderFontSize)),
		WithRenderer(render.New(
			render.WithSanitize(viper.GetBool(key.RenderSanitize)),
			render.WithFontFamily(viper.GetString(key.RenderFontFamily)),
		)),
		WithLayout(pdf.Options{
			Font:   viper.GetString(key.ExportPDFFont),
			Size:   viper.GetFloat64(key.ExportPDFFontSize),
			Margin: viper.GetFloat64(key.ExportPDFMargin),
		}),
	}
}
