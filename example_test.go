package onprem_test

import (
	"context"
	"errors"
	"fmt"

	onprem "github.com/superb-ai/onprem-go"
	"github.com/superb-ai/onprem-go/onpremtest"
	"github.com/superb-ai/onprem-go/pkg/params"
	"github.com/superb-ai/onprem-go/pkg/types"
)

// This example demonstrates creating a client for an on-prem server.
func ExampleNew() {
	client, err := onprem.New(
		onprem.WithEndpoint("https://onprem.example.com/graphql"),
		onprem.WithHeader("Authorization", "Bearer token"),
	)
	if err != nil {
		fmt.Println("Error creating client:", err)
		return
	}
	defer client.Close()

	fmt.Println(client.Endpoint())
	// Output: https://onprem.example.com/graphql
}

// This example shows the error returned when no endpoint is configured.
func ExampleNew_missingEndpoint() {
	_, err := onprem.New()
	fmt.Println(errors.Is(err, onprem.ErrMissingEndpoint))
	// Output: true
}

// This example shows how partial updates distinguish a field that is left
// alone from one that is cleared.
func ExampleSet() {
	vars, err := params.UpdateDataset{
		DatasetID:   "ds1",
		Name:        onprem.Set("renamed"),
		Description: onprem.Null[string](),
	}.Variables()
	if err != nil {
		fmt.Println("Error:", err)
		return
	}
	fmt.Println(vars)
	// Output: map[datasetId:ds1 description:<nil> name:renamed]
}

// This example walks every page of a listing.
func ExampleAll() {
	backend := onpremtest.NewBackend()
	defer backend.Close()
	client, _ := onprem.New(onprem.WithEndpoint(backend.Endpoint()))
	defer client.Close()

	ctx := context.Background()
	ds, _ := client.Datasets().Create(ctx, params.CreateDataset{Name: "cars"})
	for _, name := range []string{"train", "val", "test"} {
		client.Slices().Create(ctx, params.CreateSlice{DatasetID: ds.ID, Name: name})
	}

	slices, err := onprem.All(ctx, func(ctx context.Context, cursor string) (*types.Page[onprem.Slice], error) {
		return client.Slices().List(ctx, params.ListSlices{DatasetID: ds.ID, Cursor: cursor, Length: 2})
	})
	if err != nil {
		fmt.Println("Error:", err)
		return
	}
	for _, s := range slices {
		fmt.Println(s.Name)
	}
	// Output:
	// train
	// val
	// test
}

// This example shows how a missing entity is reported.
func ExampleIsNotFound() {
	backend := onpremtest.NewBackend()
	defer backend.Close()
	client, _ := onprem.New(onprem.WithEndpoint(backend.Endpoint()))
	defer client.Close()

	_, err := client.Datasets().Get(context.Background(), params.GetDataset{Name: "missing"})
	if nf, ok := onprem.AsNotFoundError(err); ok {
		fmt.Println("not found:", nf.Resource)
	}
	// Output: not found: dataset
}
