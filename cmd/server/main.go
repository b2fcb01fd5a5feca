package main

import (
	"github.com/drivncook/backoffice/internal/server"
)

func main() {
	s := server.New()
	s.RegisterRoutes()
	s.Start()
}
