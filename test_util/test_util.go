/*
	Copyright 2023 Google Inc.
	Licensed under the Apache License, Version 2.0 (the "License");
	you may not use this file except in compliance with the License.
	You may obtain a copy of the License at
		https://www.apache.org/licenses/LICENSE-2.0
	Unless required by applicable law or agreed to in writing, software
	distributed under the License is distributed on an "AS IS" BASIS,
	WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
	See the License for the specific language governing permissions and
	limitations under the License.
*/

// Package testutil provides helpers for testing axis layout response
// encoding.
package testutil

import (
	"fmt"
	"testing"

	"github.com/LukasDrgon/incubator-echarts/util"
	"github.com/google/go-cmp/cmp"
)

// UpdateComparator checks that a 'got' set of PropertyUpdates yields the same
// Datum as a 'want' set.
type UpdateComparator struct {
	got  []util.PropertyUpdate
	want []util.PropertyUpdate
}

// NewUpdateComparator returns a new, empty UpdateComparator.
func NewUpdateComparator() *UpdateComparator {
	return &UpdateComparator{}
}

// WithTestUpdates specifies the receiver's set of PropertyUpdates-under-test.
func (uc *UpdateComparator) WithTestUpdates(got ...util.PropertyUpdate) *UpdateComparator {
	uc.got = got
	return uc
}

// WithWantUpdates specifies a set of PropertyUpdates that should yield the
// same result as the receiver's test updates.
func (uc *UpdateComparator) WithWantUpdates(want ...util.PropertyUpdate) *UpdateComparator {
	uc.want = want
	return uc
}

// Compare applies the receiver's 'got' and 'want' PropertyUpdates to sibling
// Datums and returns a difference message and whether the two differ.
// String-table ordering need not match.
func (uc *UpdateComparator) Compare(t *testing.T) (string, bool) {
	t.Helper()
	drb := util.NewDataResponseBuilder()
	resp := drb.DataSeries(&util.DataSeriesRequest{})
	resp.Child().With(uc.got...)
	resp.Child().With(uc.want...)
	data, err := drb.Data()
	if err != nil {
		t.Fatalf("failed to build data: %s", err)
	}
	children := data.DataSeries[0].Root.Children
	diff := cmp.Diff(
		children[1].PrettyPrint("", data.StringTable),
		children[0].PrettyPrint("", data.StringTable))
	if diff != "" {
		return fmt.Sprintf("Got series %s, diff (-want +got):\n%s",
			data.DataSeries[0].PrettyPrint("", data.StringTable), diff), true
	}
	return "", false
}

// CompareResponses builds two responses, one with each of the provided
// callbacks, and reports any difference between them on t.
func CompareResponses(t *testing.T, buildGot, buildWant func(util.DataBuilder)) {
	t.Helper()
	build := func(fn func(util.DataBuilder)) *util.Data {
		drb := util.NewDataResponseBuilder()
		fn(drb.DataSeries(&util.DataSeriesRequest{}))
		data, err := drb.Data()
		if err != nil {
			t.Fatalf("failed to build data: %s", err)
		}
		return data
	}
	got, want := build(buildGot), build(buildWant)
	if diff := cmp.Diff(want.PrettyPrint(), got.PrettyPrint()); diff != "" {
		t.Errorf("Got data %s, diff (-want +got) %s", got.PrettyPrint(), diff)
	}
}
