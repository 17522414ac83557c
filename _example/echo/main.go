// Command echo demonstrates reqgate's echo middleware together with the
// playground engine, which validates bodies with go-playground/validator
// struct tags instead of Rules methods.
//
// Run:
//
//	cd _example/echo && go run .
//
// Then open http://localhost:8080/swagger/ in your browser.
package main

import (
	"net/http"
	"os"

	"github.com/labstack/echo/v4"
	"github.com/rs/zerolog"

	"github.com/Gobd/reqgate"
	"github.com/Gobd/reqgate/echogate"
	"github.com/Gobd/reqgate/openapi"
	"github.com/Gobd/reqgate/playground"
	"github.com/Gobd/reqgate/schema"
)

type UserParams struct {
	ID int `json:"id"`
}

func (p *UserParams) Rules() []*schema.FieldRules {
	return []*schema.FieldRules{
		schema.Field(&p.ID, schema.Required, schema.Min(1)),
	}
}

// CreateUser is validated by go-playground/validator tags through the
// playground engine.
type CreateUser struct {
	Name  string `json:"name" validate:"required"`
	Email string `json:"email" validate:"required,email"`
	Age   int    `json:"age" validate:"gte=0,lte=130"`
	Role  string `json:"role" validate:"omitempty,oneof=admin user"`
}

func main() {
	logger := zerolog.New(zerolog.ConsoleWriter{Out: os.Stderr}).With().Timestamp().Logger()

	doc := openapi.DocBase("Example API (echo)", "Demonstrates reqgate with echo", "0.1.0")

	openapi.Put(doc, "/users/{id}", "upsertUser", openapi.Endpoint{
		Summary: "Create or replace a user",
		Params:  UserParams{},
		Request: CreateUser{},
		Responses: map[string]openapi.Response{
			"200": {Desc: "Stored user", Bodies: []any{CreateUser{}}},
			"400": {Desc: "Validation error", Bodies: []any{reqgate.ErrorEnvelope{}}},
		},
	})

	gate := echogate.ValidateAll(reqgate.SchemaSet{
		Params: schema.For[UserParams](),
		Body: playground.For[CreateUser](playground.Messages{
			"oneof": "must be admin or user",
		}),
	}, echogate.WithLogger(logger))

	e := echo.New()

	e.GET("/swagger/*", echo.WrapHandler(openapi.SwaggerHandlerMust("/swagger/", doc)))

	e.PUT("/users/:id", func(c echo.Context) error {
		user, _ := echogate.BodyAs[CreateUser](c)
		params, _ := echogate.ParamsAs[UserParams](c)

		return c.JSON(http.StatusOK, map[string]any{"id": params.ID, "user": user})
	}, gate)

	e.Logger.Fatal(e.Start(":8080"))
}
