// Command removebg makes the white background of a logo transparent so it
// can be stamped with addlogo. It prints a single Success or Error line and
// always exits 0.
package main

import (
	"fmt"
	"io"
	"os"

	"github.com/joho/godotenv"

	"github.com/youruser/logostamp/internal/config"
	imagepkg "github.com/youruser/logostamp/internal/image"
)

func main() {
	_ = godotenv.Load()
	run(os.Stdout, config.Load())
}

func run(w io.Writer, cfg *config.Config) {
	defer func() {
		if r := recover(); r != nil {
			fmt.Fprintf(w, "Error: %v\n", r)
		}
	}()

	img, err := imagepkg.Open(cfg.Paths.RemoveBGInput)
	if err != nil {
		fmt.Fprintf(w, "Error: %v\n", err)
		return
	}

	out := imagepkg.RemoveBackground(img, imagepkg.White(), imagepkg.DefaultKeyThreshold)
	if err := imagepkg.SavePNG(cfg.Paths.RemoveBGOutput, out); err != nil {
		fmt.Fprintf(w, "Error: %v\n", err)
		return
	}
	fmt.Fprintf(w, "Success: Image saved to %s\n", cfg.Paths.RemoveBGOutput)
}
