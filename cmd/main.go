package main

import (
	"github.com/Ernan-ai/CaloCount/config"
	"github.com/Ernan-ai/CaloCount/routes"
	"github.com/Ernan-ai/CaloCount/utils"
)

func main() {
	config.InitDB()
	utils.InitS3()
	r := routes.SetupRouter()
	r.Run(":8080")
}
