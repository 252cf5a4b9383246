package systems

// SystemInfo describes a simulation system for UI display.
type SystemInfo struct {
	ID   string // Internal identifier (used for perf tracking)
	Name string // Display name
}

// SystemRegistry holds metadata about all systems.
// This centralizes system naming so the UI and perf tracker stay in sync.
type SystemRegistry struct {
	systems []SystemInfo
	byID    map[string]SystemInfo
}

// NewSystemRegistry creates a registry with all known systems.
func NewSystemRegistry() *SystemRegistry {
	reg := &SystemRegistry{
		byID: make(map[string]SystemInfo),
	}
	reg.registerDefaults()
	return reg
}

// registerDefaults adds all known systems to the registry.
// IDs match the telemetry phase names.
func (r *SystemRegistry) registerDefaults() {
	r.Register(SystemInfo{ID: "motion", Name: "Motion"})
	r.Register(SystemInfo{ID: "sync", Name: "Scene Sync"})
	r.Register(SystemInfo{ID: "telemetry", Name: "Telemetry"})
	r.Register(SystemInfo{ID: "render", Name: "Render"})
}

// Register adds a system to the registry.
func (r *SystemRegistry) Register(info SystemInfo) {
	r.systems = append(r.systems, info)
	r.byID[info.ID] = info
}

// GetName returns the display name for a system ID.
// Falls back to the ID itself if not found.
func (r *SystemRegistry) GetName(id string) string {
	if info, ok := r.byID[id]; ok {
		return info.Name
	}
	return id
}

// IDs returns all system IDs in registration order.
func (r *SystemRegistry) IDs() []string {
	ids := make([]string, len(r.systems))
	for i, info := range r.systems {
		ids[i] = info.ID
	}
	return ids
}
