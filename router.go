package main

import (
	handler "assignment-track/biz/adaptor/controller"

	"github.com/cloudwego/hertz/pkg/app/server"
)

// customizedRegister registers customize routers.
func customizedRegister(r *server.Hertz) {
	r.GET("/ping", handler.Ping)

	auth := r.Group("/auth")
	{
		auth.POST("/register", handler.Register)
		auth.POST("/sign_in", handler.SignIn)
	}

	assignment := r.Group("/assignment")
	{
		assignment.POST("/create", handler.CreateAssignment)
		assignment.GET("/list", handler.ListAssignments)
		assignment.GET("/get", handler.GetAssignment)
		assignment.POST("/update", handler.UpdateAssignment)
		assignment.POST("/delete", handler.DeleteAssignment)
	}

	submission := r.Group("/submission")
	{
		submission.POST("/create", handler.CreateSubmission)
		submission.POST("/update", handler.UpdateSubmission)
		submission.POST("/grade", handler.GradeSubmission)
		submission.GET("/list", handler.ListSubmissions)
		submission.GET("/my", handler.ListMySubmissions)
	}

	r.POST("/upload", handler.UploadFiles)
}
