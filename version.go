package shapes

// Version is the release of the shapes module.
// Release builds override it with -ldflags "-X github.com/aretw0/shapes.Version=v1.2.3".
var Version = "dev"
