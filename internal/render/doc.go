// Package render turns simulation state into GPU draw calls.
//
// A [Renderer] owns two shader programs, the particle and well vertex
// buffers, a named texture cache and the orthographic projection for the
// canvas. It talks to the GPU only through the [Context] interface, which
// keeps it testable without a window; package opengl provides the real
// implementation.
//
// Particles are drawn as one line list: each particle contributes a segment
// from its position back along its velocity, opaque at the head and fully
// transparent at the tail. Wells are drawn as textured, rotated quads.
//
// # Example
//
//	r, err := render.Initialize(ctx, 1280, 720)
//	if err != nil {
//	    return err
//	}
//	r.AddTexture("gravity_well", img)
//	simulation.SetRenderer(r)
//
// # Thread Safety
//
// Renderer is NOT thread-safe and must be used from the goroutine that owns
// the GL context.
package render
