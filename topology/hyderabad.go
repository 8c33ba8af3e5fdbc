package topology

// Hyderabad returns the built-in network: a fragment of the Hyderabad metro
// with distances in km. The Khairatabad–Lakdikapul segment is listed twice,
// as in the published table; the duplicate is harmless for routing.
func Hyderabad() []Edge {
	return []Edge{
		{From: "Ameerpet", To: "Punjagutta", Distance: 5},
		{From: "Punjagutta", To: "Irrum Manzil", Distance: 3},
		{From: "Punjagutta", To: "Khairatabad", Distance: 4},
		{From: "Khairatabad", To: "Lakdikapul", Distance: 6},
		{From: "Lakdikapul", To: "Assembly", Distance: 5},
		{From: "Ameerpet", To: "Begumpet", Distance: 6},
		{From: "Begumpet", To: "Prakash Nagar", Distance: 7},
		{From: "Prakash Nagar", To: "Rasoolpura", Distance: 5},
		{From: "Khairatabad", To: "Lakdikapul", Distance: 6},
	}
}

// HyderabadSpec wraps Hyderabad in a Spec with the default fare policy.
func HyderabadSpec() *Spec {
	return &Spec{Edges: Hyderabad()}
}
