// Copyright 2020 The Moov Authors
// Use of this source code is governed by an Apache License
// license that can be found in the LICENSE file.

package orders

import (
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"time"

	"github.com/moov-io/csb34/pkg/csb34"
	"github.com/moov-io/csb34/x/route"

	"github.com/go-kit/kit/log"
	"github.com/gorilla/mux"
)

// maxRequestSize bounds the JSON body of an order.
const maxRequestSize = 10 * 1024 * 1024

type Router struct {
	Logger    log.Logger
	Generator *Generator

	CreateCSB34File http.HandlerFunc
	GetSchemas      http.HandlerFunc
	GetSchema       http.HandlerFunc
}

func NewRouter(logger log.Logger, gen *Generator) *Router {
	return &Router{
		Logger:          logger,
		Generator:       gen,
		CreateCSB34File: CreateCSB34File(logger, gen),
		GetSchemas:      GetSchemas(logger),
		GetSchema:       GetSchema(logger),
	}
}

func (c *Router) RegisterRoutes(r *mux.Router) {
	r.Methods("POST").Path("/orders/csb34").HandlerFunc(c.CreateCSB34File)
	r.Methods("GET").Path("/csb34/schemas").HandlerFunc(c.GetSchemas)
	r.Methods("GET").Path("/csb34/schemas/{recordType}").HandlerFunc(c.GetSchema)
}

func CreateCSB34File(logger log.Logger, gen *Generator) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		responder, err := route.NewResponder(logger, w, r)
		if err != nil {
			return
		}

		var req CreateOrder
		if err := json.NewDecoder(http.MaxBytesReader(w, r.Body, maxRequestSize)).Decode(&req); err != nil {
			responder.Problem(fmt.Errorf("invalid order: %v", err))
			return
		}
		order, err := req.PaymentOrder(time.Now())
		if err != nil {
			responder.Problem(err)
			return
		}

		file, err := gen.Generate(order)
		if err != nil {
			var invalid *invalidOrder
			if errors.As(err, &invalid) {
				responder.Log("orders", "rejected order", "error", err)
				responder.Problem(err)
				return
			}
			responder.Log("orders", "problem generating file", "error", err)
			responder.Respond(func(w http.ResponseWriter) {
				w.WriteHeader(http.StatusInternalServerError)
				json.NewEncoder(w).Encode(map[string]string{"error": err.Error()})
			})
			return
		}

		responder.Respond(func(w http.ResponseWriter) {
			w.Header().Set("Content-Type", file.ContentType)
			w.Header().Set("Content-Disposition", fmt.Sprintf("attachment; filename=%q", file.Filename))
			w.Header().Set("X-File-ID", file.ID)
			w.Header().Set("X-File-SHA256", file.Checksum)
			w.WriteHeader(http.StatusOK)
			w.Write(file.Payload)
		})
	}
}

// Field describes one fixed-width slot of a record.
type Field struct {
	Name  string `json:"name"`
	Start int    `json:"start"`
	Width int    `json:"width"`
	Kind  string `json:"kind"`
	Value string `json:"value,omitempty"`
}

// Schema describes a record layout.
type Schema struct {
	RecordType csb34.RecordType `json:"recordType"`
	Length     int              `json:"length"`
	Fields     []Field          `json:"fields"`
}

func describe(s *csb34.Schema) Schema {
	out := Schema{
		RecordType: s.Type,
		Length:     s.Length,
	}
	start := 1
	for _, f := range s.Fields {
		out.Fields = append(out.Fields, Field{
			Name:  f.Name,
			Start: start,
			Width: f.Width,
			Kind:  f.Kind.String(),
			Value: f.Value,
		})
		start += f.Width
	}
	return out
}

func GetSchemas(logger log.Logger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		responder, err := route.NewResponder(logger, w, r)
		if err != nil {
			return
		}

		var out []Schema
		for _, s := range csb34.Schemas() {
			out = append(out, describe(s))
		}
		responder.Respond(func(w http.ResponseWriter) {
			w.WriteHeader(http.StatusOK)
			json.NewEncoder(w).Encode(out)
		})
	}
}

func GetSchema(logger log.Logger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		responder, err := route.NewResponder(logger, w, r)
		if err != nil {
			return
		}

		t, err := csb34.ParseRecordType(route.ReadPathID("recordType", r))
		if err != nil {
			responder.Problem(err)
			return
		}
		schema, err := csb34.Lookup(t)
		if err != nil {
			responder.Problem(err)
			return
		}
		responder.Respond(func(w http.ResponseWriter) {
			w.WriteHeader(http.StatusOK)
			json.NewEncoder(w).Encode(describe(schema))
		})
	}
}
