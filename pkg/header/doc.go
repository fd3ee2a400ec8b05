// Copyright (c) 2025, recipelog authors.  All rights reserved.
//
// Licensed under the Apache License, Version 2.0 (the "License");
// you may not use this file except in compliance with the License.
// You may obtain a copy of the License at
//
//     http://www.apache.org/licenses/LICENSE-2.0
//
// Unless required by applicable law or agreed to in writing, software
// distributed under the License is distributed on an "AS IS" BASIS,
// WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
// See the License for the specific language governing permissions and
// limitations under the License.

// Package header provides common header types for recipelog data structures.
//
// This package defines the Header type used by extraction reports and other
// recipelog data structures to provide consistent metadata and versioning
// information.
//
// # Header Structure
//
// The Header contains standard fields for API versioning and metadata:
//
//	header := header.New(
//	    header.WithKind(header.KindExtractionReport),
//	    header.WithAPIVersion("recipelog/v1"),
//	    header.WithMetadata("source", "build.log"),
//	)
//
// # Serialization
//
// Headers serialize consistently to JSON and YAML:
//
//	{
//	  "kind": "ExtractionReport",
//	  "apiVersion": "recipelog/v1",
//	  "metadata": {
//	    "id": "8b7e0b9e-3f1c-4f6a-9a0e-2f8f4b1a7c21",
//	    "timestamp": "2025-12-30T10:30:00Z",
//	    "version": "v1.0.0"
//	  }
//	}
//
// # API Versioning
//
// The APIVersion field enables evolution of data formats. Tools should check
// APIVersion before parsing:
//
//	if hdr.APIVersion != "recipelog/v1" {
//	    return fmt.Errorf("unsupported API version: %s", hdr.APIVersion)
//	}
package header
