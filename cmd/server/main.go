package main

import (
	"html/template"
	"log"
	"os"
	"strconv"
	"time"

	"campuslink/internal/db"
	"campuslink/internal/middleware"
	"campuslink/internal/router"

	"github.com/gin-contrib/multitemplate"
	"github.com/gin-contrib/sessions"
	"github.com/gin-contrib/sessions/cookie"
	"github.com/gin-gonic/gin"
	"github.com/joho/godotenv"
)

func main() {
	if err := godotenv.Load(); err != nil {
		log.Println("No .env file found, reading env vars from system")
	}

	db.Init()

	r := gin.Default()

	secret := os.Getenv("SESSION_SECRET")
	if secret == "" {
		secret = "secret_key_change_me"
	}
	store := cookie.NewStore([]byte(secret))
	r.Use(sessions.Sessions("campuslink_session", store))

	r.HTMLRender = loadTemplates("./web/templates")
	r.Static("/static", "./web/static")

	r.Use(middleware.LoadUser())
	r.Use(middleware.BanGate())

	router.RegisterRoutes(r)

	port := os.Getenv("PORT")
	if port == "" {
		port = "8080"
	}
	log.Printf("Campuslink server starting on :%s", port)
	if err := r.Run(":" + port); err != nil {
		log.Fatal(err)
	}
}

func loadTemplates(templatesDir string) multitemplate.Renderer {
	r := multitemplate.NewRenderer()

	layout := templatesDir + "/layouts/base.html"

	funcMap := template.FuncMap{
		"timeAgo": func(t time.Time) string {
			d := time.Since(t)
			switch {
			case d < time.Minute:
				return "just now"
			case d < time.Hour:
				return pluralize(int(d.Minutes()), "minute")
			case d < 24*time.Hour:
				return pluralize(int(d.Hours()), "hour")
			default:
				return pluralize(int(d.Hours()/24), "day")
			}
		},
		"add": func(a, b int) int { return a + b },
	}

	views := []string{
		"index.html",
		"auth/login.html",
		"auth/register.html",
		"auth/banned.html",
		"post/create.html",
		"post/detail.html",
		"user/profile.html",
		"admin/reports.html",
	}
	for _, view := range views {
		r.AddFromFilesFuncs(view, funcMap, layout, templatesDir+"/views/"+view)
	}

	return r
}

func pluralize(n int, unit string) string {
	if n == 1 {
		return "1 " + unit + " ago"
	}
	return strconv.Itoa(n) + " " + unit + "s ago"
}
