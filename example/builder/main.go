package main

import (
	"encoding/json"
	"flag"
	"log"

	customerquery "github.com/chartbrew/customerquery"
	"github.com/chartbrew/customerquery/api"
	"github.com/chartbrew/customerquery/conditions"
)

func main() {
	limit := flag.Int("limit", 100, "maximum number of customers to return (0 = unlimited)")
	flag.Parse()

	directory := customerquery.StaticSegments{
		{Id: "1", Name: "Trial users", Kind: api.SegmentKindDynamic},
		{Id: "2", Name: "Churned", Kind: api.SegmentKindStatic},
		{Id: "3", Name: "Enterprise", Kind: api.SegmentKindStatic},
	}

	builder, err := customerquery.NewBuilder(api.Target{ProjectId: 1, ConnectionId: 1}, directory, &customerquery.Options{
		DefaultLimit: *limit,
	})
	if err != nil {
		log.Fatalf("Error creating builder: %v", err)
	}
	defer builder.Close()
	<-builder.Ready()

	for _, segment := range builder.Segments() {
		log.Printf("Segment %s: %s (%s)", segment.Id, segment.Name, segment.Kind)
	}

	steps := []error{
		builder.AddSegmentCondition(conditions.SegmentConfig{Operation: conditions.SegmentOperationIn, Ids: []string{"1", "3"}}),
		builder.AddSegmentCondition(conditions.SegmentConfig{Operation: conditions.SegmentOperationNot, Ids: []string{"2"}}),
		builder.AddAttributeCondition(conditions.AttributeConfig{Field: "plan", Operator: "not,eq", Value: "free"}),
		builder.AddAttributeCondition(conditions.AttributeConfig{Field: "country", Operator: "exists"}),
	}
	for _, err := range steps {
		if err != nil {
			log.Fatalf("Error adding condition: %v", err)
		}
	}

	if err := builder.Remove(conditions.MatchAttribute("country")); err != nil {
		log.Fatalf("Error removing condition: %v", err)
	}

	log.Println(conditions.DescribeCombinator(builder.Conditions().Combinator()))
	for _, description := range builder.Descriptions() {
		log.Printf("  %s", description)
	}

	preview := api.Customer{Id: "c1", Segments: []string{"3"}, Attributes: map[string]interface{}{"plan": "pro"}}
	log.Printf("Customer %s matches: %t", preview.Id, builder.Conditions().Evaluate(preview))

	req, err := builder.Query()
	if err != nil {
		log.Fatalf("Error building query: %v", err)
	}
	out, err := json.MarshalIndent(req, "", "  ")
	if err != nil {
		log.Fatalf("Error encoding query: %v", err)
	}
	log.Printf("Query request:\n%s", out)
}
