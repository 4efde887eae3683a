package main

import (
	"bytes"
	"encoding/json"
	"fmt"
	"log"
	"math/rand"
	"net/http"
	"sync"
	"time"

	"github.com/google/uuid"
)

var maxRooms int = 200
var devicesPerRoom int = 3
var updatesPerDevice int = 10
var httpHostPort string = "127.0.0.1:8000"

var rnd *rand.Rand = rand.New(rand.NewSource(time.Now().UnixNano()))

var states = []string{"on", "off", "open", "closed"}

type devicePayload struct {
	ID    string `json:"id"`
	Name  string `json:"name"`
	Type  string `json:"type"`
	State string `json:"state"`
	Value int    `json:"value"`
}

type roomPayload struct {
	Name        string          `json:"name"`
	Color       string          `json:"color"`
	Temperature int             `json:"temperature"`
	Devices     []devicePayload `json:"devices"`
}

func main() {
	resp, err := http.Get(fmt.Sprintf("http://%s/healthz", httpHostPort))
	if err != nil {
		log.Fatal("Failed to connect to HTTP server:", err)
	}
	defer resp.Body.Close()
	if resp.StatusCode != http.StatusOK {
		log.Fatal("HTTP server not available")
	}

	fmt.Printf("http server verified\n")

	roomIDs := make([]string, maxRooms)
	deviceIDs := make([]string, 0, maxRooms*devicesPerRoom)
	for i := 0; i < maxRooms; i++ {
		roomIDs[i] = uuid.NewString()
		for j := 0; j < devicesPerRoom; j++ {
			deviceIDs = append(deviceIDs, uuid.NewString())
		}
	}
	fmt.Printf("generated %v room IDs with %v devices each\n", maxRooms, devicesPerRoom)

	var startTime time.Time
	var usedTime time.Duration

	startTime = time.Now()
	wg := sync.WaitGroup{}
	for i := 0; i < maxRooms; i++ {
		i := i
		wg.Add(1)
		go func() {
			defer wg.Done()
			replaceRoom(i, roomIDs[i], deviceIDs[i*devicesPerRoom:(i+1)*devicesPerRoom])
			fmt.Printf("\rreplaced room %v", i)
		}()
	}
	wg.Wait()
	usedTime = time.Since(startTime)

	fmt.Printf(
		"\rreplaced %v rooms: used time=%v seconds, throughput=%v action/second\n",
		maxRooms, usedTime.Seconds(), float64(maxRooms)/usedTime.Seconds(),
	)

	startTime = time.Now()
	wg = sync.WaitGroup{}
	for _, deviceID := range deviceIDs {
		deviceID := deviceID
		wg.Add(1)
		go func() {
			defer wg.Done()
			for k := 0; k < updatesPerDevice; k++ {
				updateDevice(deviceID)
			}
		}()
	}
	wg.Wait()
	usedTime = time.Since(startTime)

	totalUpdates := len(deviceIDs) * updatesPerDevice
	fmt.Printf(
		"sent %v device updates: used time=%v seconds, throughput=%v action/second\n",
		totalUpdates, usedTime.Seconds(), float64(totalUpdates)/usedTime.Seconds(),
	)
}

func replaceRoom(i int, roomID string, deviceIDs []string) {
	room := roomPayload{
		Name:        fmt.Sprintf("Load Room %v", i),
		Color:       "#F59E0B",
		Temperature: 18 + rnd.Intn(6),
	}
	for j, deviceID := range deviceIDs {
		room.Devices = append(room.Devices, devicePayload{
			ID:    deviceID,
			Name:  fmt.Sprintf("Load Device %v-%v", i, j),
			Type:  "light",
			State: states[rnd.Intn(len(states))],
			Value: rnd.Intn(101),
		})
	}

	body, _ := json.Marshal(room)
	req, _ := http.NewRequest(http.MethodPut,
		fmt.Sprintf("http://%s/api/rooms/%s", httpHostPort, roomID), bytes.NewReader(body))
	req.Header.Set("Content-Type", "application/json")

	resp, err := http.DefaultClient.Do(req)
	if err != nil {
		log.Fatal("room replace failed:", err)
	}
	resp.Body.Close()
}

func updateDevice(deviceID string) {
	update := map[string]any{
		"state": states[rnd.Intn(len(states))],
		"value": rnd.Intn(101),
	}

	body, _ := json.Marshal(update)
	req, _ := http.NewRequest(http.MethodPut,
		fmt.Sprintf("http://%s/api/devices/%s", httpHostPort, deviceID), bytes.NewReader(body))
	req.Header.Set("Content-Type", "application/json")

	resp, err := http.DefaultClient.Do(req)
	if err != nil {
		log.Fatal("device update failed:", err)
	}
	resp.Body.Close()
}
