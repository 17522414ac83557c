package openapi_test

import (
	"fmt"

	"github.com/Gobd/reqgate/openapi"
	"github.com/Gobd/reqgate/schema"
)

type Task struct {
	Title    string `json:"title"`
	Priority int    `json:"priority"`
}

func (t *Task) Rules() []*schema.FieldRules {
	return []*schema.FieldRules{
		schema.Field(&t.Title, schema.Required, schema.Length(1, 140)),
		schema.Field(&t.Priority, schema.Min(0), schema.Max(5)),
	}
}

func ExamplePost() {
	doc := openapi.DocBase("Task API", "Tracks work items", "1.0.0")

	openapi.Post(doc, "/tasks", "createTask", openapi.Endpoint{
		Summary:  "Create a task",
		Request:  Task{},
		Response: Task{},
	})

	fmt.Println(doc.Paths.Value("/tasks").Post.OperationID)
	// Output: createTask
}

func ExampleDocBase() {
	doc := openapi.DocBase("Relay Service", "Internal message relay", "0.1.0")
	fmt.Println(doc.Info.Title)
	fmt.Println(doc.OpenAPI)
	// Output:
	// Relay Service
	// 3.0.3
}

func ExampleGet() {
	doc := openapi.DocBase("Task API", "Tracks work items", "1.0.0")

	openapi.Get(doc, "/tasks", "listTasks", openapi.Endpoint{
		Summary:  "List open tasks",
		Response: []Task{},
	})

	fmt.Println(doc.Paths.Value("/tasks").Get.OperationID)
	// Output: listTasks
}

func ExampleParamsFor() {
	params := openapi.ParamsForMust(struct {
		ID string `json:"id"`
	}{}, "path")

	for _, p := range params {
		fmt.Println(p.Value.Name, p.Value.In, p.Value.Required)
	}
	// Output: id path true
}
