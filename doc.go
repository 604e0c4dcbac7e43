// Package imgdraw converts a raster image into an ordered sequence of 2D
// polylines suitable for pen-drawing, for example by replaying them as
// device pointer motion.
//
// # Overview
//
// The pipeline runs strictly forward:
//
//	image -> mask -> curve paths -> polylines -> filtered -> scaled -> output
//
// A grayscale image is binarized against a threshold, the foreground mask is
// traced into closed vector outlines (cubic Bezier and line segments), each
// outline is tessellated into a polyline, polylines that merely outline the
// image's own rectangular border are discarded, and the survivors are
// rescaled into output coordinates.
//
// # Quick Start
//
//	cfg := imgdraw.DefaultConfig()
//	p, err := imgdraw.NewPipeline(cfg)
//	if err != nil {
//	    log.Fatal(err)
//	}
//	polylines, err := p.Run(grayImage)
//
// # Tracing Backends
//
// Bitmap tracing is consumed through the narrow [Tracer] interface. The
// default backend wraps the potrace port github.com/dennwc/gotrace; an
// alternative backend can be injected with [WithTracer] without touching
// the rest of the pipeline.
//
// # Coordinate System
//
// Uses standard image coordinates: origin (0,0) at top-left, X increases
// right, Y increases down. All output polylines are expressed in one
// coordinate system (post-scale); pre-scale and post-scale coordinates are
// never mixed.
package imgdraw
