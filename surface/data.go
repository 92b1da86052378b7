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

package surface

import (
	"github.com/LukasDrgon/incubator-echarts/shape"
	"github.com/LukasDrgon/incubator-echarts/util"
)

// Data encodes the provided shapes, in painting order, as children of db.
// The structure of the encoded data is:
//
//	<db>
//	  shape (repeated; see package shape)
func Data(db util.DataBuilder, shapes []shape.Shape) {
	r := &Recorder{shapes: shapes}
	for _, s := range r.Shapes() {
		db.Child().With(s.Define())
	}
}
