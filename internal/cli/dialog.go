package cli

import (
	"github.com/ncruces/zenity"

	"github.com/iburimskiy/neural-visualization/internal/config"
)

// showError is swapped out in tests.
var showError = func(err error) {
	_ = zenity.Error(err.Error(),
		zenity.Title(config.WindowTitle),
		zenity.ErrorIcon,
	)
}
