// Command addlogo stamps logo.png onto background.jpg and writes output.jpg.
//
// The paths are fixed; they can be moved with LOGOSTAMP_BACKGROUND,
// LOGOSTAMP_LOGO and LOGOSTAMP_OUTPUT (or a .env file). The command prints
// a single Success or Error line and always exits 0.
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

	layout := imagepkg.DefaultLayout()
	layout.Quality = cfg.Output.JPEGQuality

	if _, err := imagepkg.AddLogo(cfg.Paths.Background, cfg.Paths.Logo, cfg.Paths.Output, layout); err != nil {
		fmt.Fprintf(w, "Error: %v\n", err)
		return
	}
	fmt.Fprintf(w, "Success: Image saved to %s\n", cfg.Paths.Output)
}
