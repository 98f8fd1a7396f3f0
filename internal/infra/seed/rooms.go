package seed

import "roombooking/internal/domain/room"

type roomRecord struct {
	id, name, location string
	capacity           int
	perHour, perDay    float64
	amenities          []string
	description        string
}

var ukConferenceRooms = []roomRecord{
	{"LON001", "The Churchill Room", "London, Westminster", 50, 150.00, 1000.00,
		[]string{"Projector", "Video Conference", "Whiteboard", "WiFi"},
		"Named after Winston Churchill, perfect for executive meetings"},
	{"LON002", "Thames View Conference Hall", "London, South Bank", 200, 350.00, 2500.00,
		[]string{"Stage", "Audio System", "Projector", "Catering Available"},
		"Large conference hall with stunning Thames views"},
	{"LON003", "The Boardroom at Canary Wharf", "London, Canary Wharf", 20, 200.00, 1400.00,
		[]string{"Smart Board", "Video Conference", "Coffee Machine"},
		"Premium boardroom in the heart of London's financial district"},
	{"MAN001", "Northern Innovation Hub", "Manchester, City Centre", 100, 120.00, 850.00,
		[]string{"Projector", "Sound System", "WiFi", "Breakout Rooms"},
		"Modern space for tech conferences and innovation summits"},
	{"MAN002", "Media City Conference Room", "Manchester, Salford Quays", 75, 100.00, 700.00,
		[]string{"Video Production", "Streaming Equipment", "Green Screen"},
		"State-of-the-art facility for media and digital events"},
	{"BIR001", "Bullring Business Suite", "Birmingham, City Centre", 40, 80.00, 550.00,
		[]string{"Projector", "Video Conference", "Catering"},
		"Central location ideal for midlands business meetings"},
	{"EDI001", "Edinburgh Castle View Room", "Edinburgh, Old Town", 60, 110.00, 800.00,
		[]string{"Projector", "WiFi", "Historic Setting"},
		"Elegant room with views of Edinburgh Castle"},
	{"EDI002", "Scottish Parliament Conference Hall", "Edinburgh, Holyrood", 150, 180.00, 1300.00,
		[]string{"Stage", "Audio System", "Translation Booths"},
		"Professional venue near the Scottish Parliament"},
	{"GLA001", "Clyde Riverside Meeting Room", "Glasgow, City Centre", 30, 75.00, 500.00,
		[]string{"Smart Board", "Video Conference", "River Views"},
		"Modern riverside venue in Glasgow's business district"},
	{"BRI001", "Harbourside Innovation Centre", "Bristol, Harbourside", 80, 95.00, 650.00,
		[]string{"Projector", "Sound System", "WiFi", "Outdoor Terrace"},
		"Creative space for tech and innovation events"},
	{"LEE001", "Yorkshire Business Hub", "Leeds, City Centre", 45, 70.00, 480.00,
		[]string{"Projector", "Video Conference", "Catering Kitchen"},
		"Versatile space in Leeds' business quarter"},
	{"LIV001", "Albert Dock Conference Suite", "Liverpool, Albert Dock", 120, 130.00, 900.00,
		[]string{"Stage", "Audio Visual", "Waterfront Views"},
		"Historic dockside venue for large conferences"},
}

// Rooms returns the UK conference room catalog used to bootstrap an empty
// deployment.
func Rooms() []*room.Room {
	out := make([]*room.Room, 0, len(ukConferenceRooms))
	for _, rec := range ukConferenceRooms {
		rm, err := room.NewRoom(rec.id, rec.name, rec.location, rec.capacity,
			rec.perHour, rec.perDay, rec.amenities, rec.description)
		if err != nil {
			// The dataset is static; a construction failure is a programming
			// error, not a runtime condition.
			panic(err)
		}
		out = append(out, rm)
	}
	return out
}
