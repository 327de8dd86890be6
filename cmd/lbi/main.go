package main

import (
	"github.com/Daechler/LinuxBinaryInstaller/internal/interfaces/cli"
	"github.com/Daechler/LinuxBinaryInstaller/internal/interfaces/di"
)

func main() {
	cli.Execute(di.NewContainer())
}
