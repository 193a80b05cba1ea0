package store

import (
	"encoding/json"
	"fmt"

	"github.com/2beens/fitlog/internal/records"

	log "github.com/sirupsen/logrus"
)

// Records cross the firestore boundary through their JSON form, so documents
// decoded from firestore keep every stored field and are written back unchanged
// when an edit did not target them.

func getItems(m map[string]interface{}, key string) []interface{} {
	items, _ := m[key].([]interface{})
	return items
}

// --- UserHistory ---

func HistoryFromFirestore(m map[string]interface{}) *records.UserHistory {
	history := records.NewUserHistory()
	for _, item := range getItems(m, "workouts") {
		history.Workouts = append(history.Workouts, WorkoutFromFirestore(item))
	}
	for _, item := range getItems(m, "weightLogs") {
		history.WeightLogs = append(history.WeightLogs, WeightLogFromFirestore(item))
	}
	return history
}

// --- WorkoutRecord ---

func WorkoutToFirestore(w records.WorkoutRecord) (interface{}, error) {
	return toFirestore(w)
}

func WorkoutFromFirestore(item interface{}) records.WorkoutRecord {
	var w records.WorkoutRecord
	fromFirestore(item, &w, "workout")
	return w
}

// --- WeightLogEntry ---

func WeightLogToFirestore(l records.WeightLogEntry) (interface{}, error) {
	return toFirestore(l)
}

func WeightLogFromFirestore(item interface{}) records.WeightLogEntry {
	var l records.WeightLogEntry
	fromFirestore(item, &l, "weight log")
	return l
}

func toFirestore(record json.Marshaler) (interface{}, error) {
	data, err := record.MarshalJSON()
	if err != nil {
		return nil, fmt.Errorf("encode record: %w", err)
	}
	return records.JSONNative(data)
}

func fromFirestore(item interface{}, record json.Unmarshaler, what string) {
	data, err := records.NativeJSON(item)
	if err != nil {
		log.Warnf("firestore %s: %s", what, err)
		return
	}
	if err := record.UnmarshalJSON(data); err != nil {
		log.Warnf("firestore %s: %s", what, err)
	}
}
