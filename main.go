package main

import (
	"log"
	"os"

	"github.com/joho/godotenv"

	"github.com/DriesFaems/interview-generator-students/internal/cli"
)

func main() {
	// Загружаем переменные окружения; в контейнере .env может не быть
	if err := godotenv.Load(); err != nil && !os.IsNotExist(err) {
		log.Fatalf("Ошибка загрузки .env файла: %v", err)
	}

	if err := cli.Execute(); err != nil {
		os.Exit(1)
	}
}
