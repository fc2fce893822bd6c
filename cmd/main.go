package main

import (
	"github.com/msherazsadiq/Healthify/config"
	"github.com/msherazsadiq/Healthify/routes"
	"github.com/msherazsadiq/Healthify/utils"
)

func main() {
	config.InitDB()
	utils.InitS3()
	r := routes.SetupRouter()
	r.Run(":8080")
}
