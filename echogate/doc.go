// Package echogate is the echo rendition of the request gate. It extracts
// route params, query values, and the JSON body from echo's context, runs
// them through a [reqgate.SchemaSet], and either rejects the request with the
// standard 400 envelope or commits the coerced sections to echo's context
// store for the handler:
//
//	e := echo.New()
//	e.POST("/orders/:id", func(c echo.Context) error {
//	    order, _ := echogate.BodyAs[CreateOrder](c)
//	    return c.JSON(http.StatusOK, order)
//	}, echogate.ValidateAll(reqgate.SchemaSet{
//	    Params: schema.For[OrderParams](),
//	    Body:   schema.For[CreateOrder](),
//	}))
//
// Evaluation semantics are identical to [reqgate.ValidateAll]: all configured
// sections are checked, failures are collected per section, and coercion is
// committed only when the whole request passes.
package echogate
