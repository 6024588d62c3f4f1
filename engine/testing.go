package engine

import "sort"

// MemoryScene is a Scene without physics; positions change only through SetPosition
type MemoryScene struct {
	objects map[ObjectID]Object
	nextID  ObjectID
}

// NewMemoryScene creates an empty scene
func NewMemoryScene() *MemoryScene {
	return &MemoryScene{objects: make(map[ObjectID]Object)}
}

func (s *MemoryScene) Spawn(req SpawnRequest) ObjectID {
	s.nextID++
	s.objects[s.nextID] = Object{
		ID:       s.nextID,
		Category: req.Category,
		Shape:    req.Shape,
		Color:    req.Color,
		VX:       req.ImpulseX,
		VY:       req.ImpulseY,
	}
	return s.nextID
}

// Add inserts an object at a fixed position and returns its id
func (s *MemoryScene) Add(category Category, y float64) ObjectID {
	id := s.Spawn(SpawnRequest{Category: category})
	s.SetPosition(id, 0, y)
	return id
}

// SetPosition moves an object
func (s *MemoryScene) SetPosition(id ObjectID, x, y float64) {
	if obj, ok := s.objects[id]; ok {
		obj.X, obj.Y = x, y
		s.objects[id] = obj
	}
}

func (s *MemoryScene) Destroy(id ObjectID) bool {
	if _, ok := s.objects[id]; !ok {
		return false
	}
	delete(s.objects, id)
	return true
}

func (s *MemoryScene) Get(id ObjectID) (Object, bool) {
	obj, ok := s.objects[id]
	return obj, ok
}

// Objects returns live objects ordered by id
func (s *MemoryScene) Objects() []Object {
	out := make([]Object, 0, len(s.objects))
	for _, obj := range s.objects {
		out = append(out, obj)
	}
	sort.Slice(out, func(i, j int) bool { return out[i].ID < out[j].ID })
	return out
}

func (s *MemoryScene) Len() int { return len(s.objects) }

func (s *MemoryScene) Clear() {
	clear(s.objects)
}

// MemoryScoreStore keeps the record in memory
type MemoryScoreStore struct {
	Record ScoreRecord
	Saves  int
	saved  bool
	Err    error // Returned from Save when set
}

func (m *MemoryScoreStore) Save(rec ScoreRecord) error {
	if m.Err != nil {
		return m.Err
	}
	m.Record = rec
	m.Saves++
	m.saved = true
	return nil
}

func (m *MemoryScoreStore) Load() (ScoreRecord, error) {
	if !m.saved {
		return ScoreRecord{}, ErrNoRecord
	}
	return m.Record, nil
}

// NewMemoryScoreStore creates a store preloaded with rec
func NewMemoryScoreStore(rec ScoreRecord) *MemoryScoreStore {
	return &MemoryScoreStore{Record: rec, saved: true}
}
