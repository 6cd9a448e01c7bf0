package main

import (
	"context"
	"fmt"
	"os"

	"github.com/klabast/wb-services/calendar-views/internal/commands"
)

func main() {
	if err := commands.NewRootCommand().ExecuteContext(context.Background()); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}
