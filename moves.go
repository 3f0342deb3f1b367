package twisty

// Predefined moves for convenience.
// Use these instead of constructing Move structs manually.
//
// Example:
//
//	ctrl.RotateFace(twisty.F.Face, twisty.F.Clockwise)
var (
	// Front face moves
	F      = Move{Face: FaceFront, Clockwise: true}
	FPrime = Move{Face: FaceFront, Clockwise: false}

	// Back face moves
	B      = Move{Face: FaceBack, Clockwise: true}
	BPrime = Move{Face: FaceBack, Clockwise: false}

	// Left face moves
	L      = Move{Face: FaceLeft, Clockwise: true}
	LPrime = Move{Face: FaceLeft, Clockwise: false}

	// Right face moves
	R      = Move{Face: FaceRight, Clockwise: true}
	RPrime = Move{Face: FaceRight, Clockwise: false}

	// Top face moves
	U      = Move{Face: FaceTop, Clockwise: true}
	UPrime = Move{Face: FaceTop, Clockwise: false}

	// Bottom face moves
	D      = Move{Face: FaceBottom, Clockwise: true}
	DPrime = Move{Face: FaceBottom, Clockwise: false}
)
