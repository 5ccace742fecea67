package core

// Logger is implemented by anything that can receive progress and
// diagnostic output from the renderer. The core algorithm never writes to
// stdout directly so a host (CLI, web server, test) can redirect it.
type Logger interface {
	Printf(format string, args ...interface{})
}

// Occluder reports whether any geometry blocks a shadow ray. It is a
// narrower interface than a full scene so that visibility testing (owned
// by the light package) never needs to import the scene package.
type Occluder interface {
	IntersectP(ray Ray) bool
}
