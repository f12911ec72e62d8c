package utils

import (
	"encoding/json"
	"strconv"

	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/log"
	"github.com/tidwall/pretty"
)

var (
	BabyBlue = lipgloss.NewStyle().Foreground(lipgloss.Color("39"))
	Yellow   = lipgloss.NewStyle().Foreground(lipgloss.Color("220"))
	Green    = lipgloss.NewStyle().Foreground(lipgloss.Color("76"))
	Bold     = lipgloss.NewStyle().Bold(true)
)

func PrintJSONColored(data interface{}) {
	j, err := json.MarshalIndent(data, "", "  ")
	if err != nil {
		log.Errorf("Error marshalling JSON: %v", err)
		return
	}

	jPretty := pretty.Color(j, nil)
	log.Info(string(jPretty))
}

// Banner prints the startup summary: directory, image count, auto-advance and controls.
func Banner(dir string, count int, autoAdvance int) {
	log.Info(Bold.Render("Image Slideshow"))
	log.Infof("Using directory: %s", BabyBlue.Render(dir))
	log.Infof("Found %s images", Green.Render(strconv.Itoa(count)))
	if autoAdvance == 0 {
		log.Infof("Auto-advance is %s", Yellow.Render("disabled"))
	} else {
		log.Infof("Auto-advance is set to %s seconds", Yellow.Render(strconv.Itoa(autoAdvance)))
	}
	log.Info("Controls:")
	log.Info("  Right/Left arrows: navigate between images")
	log.Info("  ESC or Q: quit")
	log.Info("  slideshow next|prev|stop|status: control from another terminal")
}
