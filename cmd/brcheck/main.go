// Command brcheck validates and formats Brazilian personal data offline.
//
//	brcheck cpf 111.444.777-35
//	brcheck phone -json "(11) 99988-7766"
//	brcheck password -lang en -username maria "SenhaForte123!"
//	brcheck sanitize -max 10 "This   is a long text"
//	brcheck help-text -policy complex
package main

import (
	"context"
	"fmt"
	"os"

	"github.com/armoredgo/armored/internal/cli"
)

func main() {
	app, err := cli.New(context.Background(), os.Stdout, os.Stderr)
	if err != nil {
		fmt.Fprintf(os.Stderr, "brcheck: %v\n", err)
		os.Exit(1)
	}
	os.Exit(app.Run(os.Args[1:]))
}
