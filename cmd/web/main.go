package main

import "sonna_backend/internal/app"

func main() {
	app.Run()
}
