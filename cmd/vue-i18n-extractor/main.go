package main

import "vue-i18n-extractor/internal/cli"

func main() {
	cli.Execute()
}
