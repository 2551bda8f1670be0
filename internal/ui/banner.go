package ui

import (
	"fmt"
	"math/rand"
	"strings"
	"time"

	"github.com/pterm/pterm"
)

const bannerText = `
     ____.     ___.    __________                       .___
    |    | ____\_ |__  \______   \ _________ _______  __| _/
    |    |/  _ \| __ \  |    |  _//  _ \__  \\_  __ \/ __ |
/\__|    (  <_> ) \_\ \ |    |   (  <_> ) __ \|  | \/ /_/ |
\________|\____/|___  / |______  /\____(____  /__|  \____ |
                    \/         \/           \/           \/
`

func colorizeText(text string) string {
	source := rand.NewSource(time.Now().UnixNano())
	random := rand.New(source)

	startColor := pterm.NewRGB(uint8(random.Intn(256)), uint8(random.Intn(256)), uint8(random.Intn(256)))
	firstPoint := pterm.NewRGB(uint8(random.Intn(256)), uint8(random.Intn(256)), uint8(random.Intn(256)))

	half := len(text) / 2
	if half == 0 {
		return text
	}

	strs := strings.Split(text, "")
	var coloredText string
	for i := 0; i < len(text); i++ {
		if i < len(strs) {
			coloredText += startColor.Fade(0, float32(len(text)), float32(i%half), firstPoint).Sprint(strs[i])
		}
	}

	return coloredText
}

func PrintBanner(silence bool) {
	if !silence {
		fmt.Println(colorizeText(bannerText))
	}
}
