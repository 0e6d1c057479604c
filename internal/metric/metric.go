package metric

import "fmt"

// Type identifies what a metric entry measures, mirroring the
// devproto_metric_type_t catalogue across system, RF, performance,
// device, 5G NR, and carrier-aggregation categories.
type Type uint8

// System metrics (0x01-0x0F).
const (
	CPUUsage    Type = 0x01
	MemoryUsage Type = 0x02
	Temperature Type = 0x03
	Humidity    Type = 0x04
	FanSpeed    Type = 0x05
	Voltage     Type = 0x06
	Current     Type = 0x07
	Power       Type = 0x08
)

// RF metrics (0x10-0x1F).
const (
	SignalStrength Type = 0x10
	SignalQuality  Type = 0x11
	Interference   Type = 0x12
	BER            Type = 0x13
	VSWR           Type = 0x14
	AntennaTilt    Type = 0x15
)

// Performance metrics (0x20-0x2F).
const (
	Throughput      Type = 0x20
	Latency         Type = 0x21
	PacketLoss      Type = 0x22
	Jitter          Type = 0x23
	ConnectionCount Type = 0x24
)

// Device metrics (0x30-0x3F).
const (
	BatteryLevel Type = 0x30
	Uptime       Type = 0x31
	ErrorCount   Type = 0x32
)

// 5G NR700 (n28 band) metrics (0x40-0x4F).
const (
	DLThroughputNR700 Type = 0x40
	ULThroughputNR700 Type = 0x41
	RSRPNR700         Type = 0x42
	SINRNR700         Type = 0x43
)

// 5G NR3500 (n78 band) metrics (0x50-0x5F).
const (
	DLThroughputNR3500 Type = 0x50
	ULThroughputNR3500 Type = 0x51
	RSRPNR3500         Type = 0x52
	SINRNR3500         Type = 0x53
)

// 5G radio metrics (0x60-0x6F).
const (
	PDCPThroughput Type = 0x60
	RLCThroughput  Type = 0x61
	InitialBLER    Type = 0x62
	AvgMCS         Type = 0x63
	RBPerSlot      Type = 0x64
	RankIndicator  Type = 0x65
)

// RF quality metrics (0x70-0x77).
const (
	TXImbalance       Type = 0x70
	LatencyPing       Type = 0x71
	HandoverSuccess   Type = 0x72
	InterferenceLevel Type = 0x73
)

// Carrier aggregation metrics (0x78-0x7F).
const (
	CADLThroughput Type = 0x78
	CAULThroughput Type = 0x79
)

// All requests every metric a device reports, rather than a specific
// type. It only ever appears in a request payload, never in a response
// entry.
const All Type = 0xFF

// EntrySize is the fixed wire size of a single metric entry: a 1-byte
// type code followed by a 4-byte big-endian float.
const EntrySize = 5

var names = map[Type]string{
	CPUUsage:           "CPU_USAGE",
	MemoryUsage:        "MEMORY_USAGE",
	Temperature:        "TEMPERATURE",
	Humidity:           "HUMIDITY",
	FanSpeed:           "FAN_SPEED",
	Voltage:            "VOLTAGE",
	Current:            "CURRENT",
	Power:              "POWER",
	SignalStrength:     "SIGNAL_STRENGTH",
	SignalQuality:      "SIGNAL_QUALITY",
	Interference:       "INTERFERENCE",
	BER:                "BER",
	VSWR:               "VSWR",
	AntennaTilt:        "ANTENNA_TILT",
	Throughput:         "THROUGHPUT",
	Latency:            "LATENCY",
	PacketLoss:         "PACKET_LOSS",
	Jitter:             "JITTER",
	ConnectionCount:    "CONNECTION_COUNT",
	BatteryLevel:       "BATTERY_LEVEL",
	Uptime:             "UPTIME",
	ErrorCount:         "ERROR_COUNT",
	DLThroughputNR700:  "DL_THROUGHPUT_NR700",
	ULThroughputNR700:  "UL_THROUGHPUT_NR700",
	RSRPNR700:          "RSRP_NR700",
	SINRNR700:          "SINR_NR700",
	DLThroughputNR3500: "DL_THROUGHPUT_NR3500",
	ULThroughputNR3500: "UL_THROUGHPUT_NR3500",
	RSRPNR3500:         "RSRP_NR3500",
	SINRNR3500:         "SINR_NR3500",
	PDCPThroughput:     "PDCP_THROUGHPUT",
	RLCThroughput:      "RLC_THROUGHPUT",
	InitialBLER:        "INITIAL_BLER",
	AvgMCS:             "AVG_MCS",
	RBPerSlot:          "RB_PER_SLOT",
	RankIndicator:      "RANK_INDICATOR",
	TXImbalance:        "TX_IMBALANCE",
	LatencyPing:        "LATENCY_PING",
	HandoverSuccess:    "HANDOVER_SUCCESS_RATE",
	InterferenceLevel:  "INTERFERENCE_LEVEL",
	CADLThroughput:     "CA_DL_THROUGHPUT",
	CAULThroughput:     "CA_UL_THROUGHPUT",
	All:                "ALL_METRICS",
}

// Name returns t's identifier, or "UNKNOWN" if t isn't in the
// catalogue above. Unrecognized codes are not an error: a newer
// device may report a metric type this build predates.
func (t Type) Name() string {
	if n, ok := names[t]; ok {
		return n
	}
	return "UNKNOWN"
}

func (t Type) String() string {
	return fmt.Sprintf("%s(0x%02X)", t.Name(), uint8(t))
}

// Record is a single decoded metric: its type and IEEE-754 value.
type Record struct {
	Type  Type
	Value float32
}

// Build encodes records into out as a packed array of 5-byte entries,
// returning the number of bytes written. out must hold at least
// len(records)*EntrySize bytes.
func Build(records []Record, out []byte) (int, error) {
	n := len(records) * EntrySize
	if len(out) < n {
		return 0, fmt.Errorf("metric: buffer too short for %d records", len(records))
	}
	for i, r := range records {
		off := i * EntrySize
		out[off] = byte(r.Type)
		Float32ToBE(r.Value, out[off+1:off+EntrySize])
	}
	return n, nil
}

// Parse decodes a packed array of metric entries from data. A trailing
// partial entry (fewer than EntrySize bytes left over) is silently
// ignored rather than treated as an error, tolerating truncated
// payloads from a partial read.
func Parse(data []byte) []Record {
	count := len(data) / EntrySize
	if count == 0 {
		return nil
	}
	records := make([]Record, count)
	for i := 0; i < count; i++ {
		off := i * EntrySize
		records[i] = Record{
			Type:  Type(data[off]),
			Value: Float32FromBE(data[off+1 : off+EntrySize]),
		}
	}
	return records
}
