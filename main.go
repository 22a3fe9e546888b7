package main

import (
	"github.com/Rj-Kushwaha/Aegis-Health-Assistant/CronJobs"
	"github.com/Rj-Kushwaha/Aegis-Health-Assistant/FirebaseMessaging"
	"github.com/Rj-Kushwaha/Aegis-Health-Assistant/Models"
	"github.com/Rj-Kushwaha/Aegis-Health-Assistant/Routes"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
)

func main() {
	Models.ConnectDataBase()
	FirebaseMessaging.Setup()
	router := gin.Default()
	router.Use(cors.New(cors.Config{
		AllowOrigins:     []string{"http://localhost:3000"},
		AllowMethods:     []string{"GET", "POST", "PUT", "DELETE", "OPTIONS"},
		AllowHeaders:     []string{"Origin", "Content-Type", "Accept", "Authorization"},
		AllowCredentials: true,
	},
	))
	Routes.ConfigRoutes(router)
	reminderSweep := CronJobs.NewMedicineReminderSweep(Models.DB)
	reminderSweep.StartReminderCron()
	router.Run(":3005")
}
