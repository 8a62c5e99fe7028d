/*
Copyright © 2025 NAME HERE <EMAIL ADDRESS>

*/
package main

import (
	"github.com/hance08/pointsbot/cmd"
	"github.com/hance08/pointsbot/migrations"
)

func main() {
	cmd.Execute(migrations.FS)
}
