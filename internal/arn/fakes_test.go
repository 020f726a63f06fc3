package arn

import (
	"context"
	"iter"
	"sort"

	"github.com/ZanzyTHEbar/errbuilder-go"

	"cloudsweep/internal/policies"
	"cloudsweep/internal/ports"
	"cloudsweep/internal/types"
)

type fakeRegistry struct {
	services []string
	metas    map[string]types.ResourceMeta
}

func (f fakeRegistry) Services(provider string) ([]string, error) {
	if provider != "aws" {
		return nil, nil
	}
	return f.services, nil
}

func (f fakeRegistry) Types(provider string, service string) ([]string, error) {
	if provider != "aws" {
		return nil, nil
	}
	var names []string
	for _, meta := range f.metas {
		if meta.Service == service {
			names = append(names, meta.Type)
		}
	}
	sort.Strings(names)
	return names, nil
}

func (f fakeRegistry) Lookup(provider string, service string, resourceType string) (types.ResourceMeta, error) {
	meta, ok := f.metas[service+"/"+resourceType]
	if !ok {
		return types.ResourceMeta{}, errbuilder.New().
			WithCode(errbuilder.CodeNotFound).
			WithMsg("no registry entry for " + service + ":" + resourceType)
	}
	return meta, nil
}

type fakeProfiles struct {
	configs map[string]types.ProfileConfig
}

func (f fakeProfiles) Profiles() ([]string, error) {
	names := make([]string, 0, len(f.configs))
	for name := range f.configs {
		names = append(names, name)
	}
	sort.Strings(names)
	return names, nil
}

func (f fakeProfiles) Config(profile string) (types.ProfileConfig, error) {
	cfg, ok := f.configs[profile]
	if !ok {
		return types.ProfileConfig{}, errbuilder.New().
			WithCode(errbuilder.CodeNotFound).
			WithMsg("profile " + profile + " not found")
	}
	return cfg, nil
}

type fakeSession struct {
	profile string
}

func (s fakeSession) Profile() string { return s.profile }

type fakeSessions struct {
	opened []string
}

func (f *fakeSessions) Open(_ context.Context, profile string) (ports.Session, error) {
	f.opened = append(f.opened, profile)
	return fakeSession{profile: profile}, nil
}

type enumCall struct {
	Profile string
	Region  string
	Meta    types.ResourceMeta
	Args    map[string]any
}

type fakeEnumerator struct {
	items map[string][]map[string]any
	err   error
	calls []enumCall
}

func (f *fakeEnumerator) Enumerate(_ context.Context, sess ports.Session, region string, meta types.ResourceMeta, args map[string]any) iter.Seq2[map[string]any, error] {
	f.calls = append(f.calls, enumCall{Profile: sess.Profile(), Region: region, Meta: meta, Args: args})
	return func(yield func(map[string]any, error) bool) {
		if f.err != nil {
			yield(nil, f.err)
			return
		}
		for _, item := range f.items[meta.Service+"/"+meta.Type] {
			if !serverSideMatch(item, meta, args) {
				continue
			}
			if !yield(item, nil) {
				return
			}
		}
	}
}

// serverSideMatch emulates the provider API honoring a declared filter field.
func serverSideMatch(item map[string]any, meta types.ResourceMeta, args map[string]any) bool {
	if meta.FilterName == "" {
		return true
	}
	filter, ok := args[meta.FilterName]
	if !ok {
		return true
	}
	id, _ := item[meta.ID].(string)
	switch wanted := filter.(type) {
	case []string:
		for _, value := range wanted {
			if value == id {
				return true
			}
		}
		return false
	case string:
		return wanted == id
	default:
		return false
	}
}

type fakeQuery struct {
	expr string
}

func (q fakeQuery) Evaluate(any) (bool, error) { return true, nil }

type fakeQueryCompiler struct {
	compiled []string
}

func (f *fakeQueryCompiler) Compile(expression string) (types.Query, error) {
	f.compiled = append(f.compiled, expression)
	return fakeQuery{expr: expression}, nil
}

func testDeps(reg fakeRegistry, profiles fakeProfiles, enum *fakeEnumerator) Deps {
	return Deps{
		Registry:   reg,
		Profiles:   profiles,
		Sessions:   &fakeSessions{},
		Enumerator: enum,
		Query:      &fakeQueryCompiler{},
		Regions:    policies.NewRegionPolicy(),
	}
}

func cloudwatchFixture() (fakeRegistry, fakeProfiles, *fakeEnumerator) {
	reg := fakeRegistry{
		services: []string{"cloudwatch", "kinesis", "s3"},
		metas: map[string]types.ResourceMeta{
			"cloudwatch/alarm": {
				Service:    "cloudwatch",
				Type:       "alarm",
				EnumOp:     "DescribeAlarms",
				ResultPath: "MetricAlarms",
				ID:         "AlarmName",
				FilterName: "AlarmNames",
				FilterKind: types.FilterKindList,
			},
			"kinesis/stream": {
				Service:    "kinesis",
				Type:       "stream",
				EnumOp:     "ListStreams",
				ResultPath: "StreamNames",
				ID:         "StreamName",
			},
		},
	}
	profiles := fakeProfiles{
		configs: map[string]types.ProfileConfig{
			"dev":   {Name: "dev", AccountID: "123456789"},
			"prod":  {Name: "prod", AccountID: "987654321"},
			"plain": {Name: "plain"},
		},
	}
	enum := &fakeEnumerator{
		items: map[string][]map[string]any{
			"cloudwatch/alarm": {
				{"AlarmName": "my-alarm", "StateValue": "OK"},
				{"AlarmName": "other-alarm", "StateValue": "ALARM"},
			},
			"kinesis/stream": {
				{"StreamName": "clicks"},
				{"StreamName": "orders"},
			},
		},
	}
	return reg, profiles, enum
}
