package main

import (
	"github.com/mearas/realmwar/internal/cli"
)

func main() {
	cli.Execute()
}
