package domain

// SceneUpdate is one entry of a scene change notification batch. It concerns
// either an object (IsObject true) or a shared curve-data resource.
type SceneUpdate struct {
	// ObjectName names the updated object when IsObject is true.
	ObjectName string
	// DataName names the updated shared curve-data resource when IsObject is false.
	DataName string
	// IsObject distinguishes object-level updates from curve-data updates.
	IsObject bool
	// GeometryUpdated reports whether the host flagged the update as touching
	// geometry. The flag is only considered reliable for object-level updates.
	GeometryUpdated bool
}

// UpdateBatch is a batch of scene update notifications delivered by the host
// after a document mutation.
type UpdateBatch struct {
	// ObjectsUpdated is set when the batch contains any object-level update.
	ObjectsUpdated bool
	// CurveDataUpdated is set when the batch contains any curve-data update.
	CurveDataUpdated bool
	Updates          []SceneUpdate
}

// Empty reports whether the batch carries no object- or curve-level updates
// at all and can be rejected without inspecting its entries.
func (b UpdateBatch) Empty() bool {
	return !b.ObjectsUpdated && !b.CurveDataUpdated
}

// ObjectUpdate builds an object-level update entry.
func ObjectUpdate(name string, geometry bool) SceneUpdate {
	return SceneUpdate{ObjectName: name, IsObject: true, GeometryUpdated: geometry}
}

// DataUpdate builds a curve-data update entry.
func DataUpdate(name string) SceneUpdate {
	return SceneUpdate{DataName: name}
}
