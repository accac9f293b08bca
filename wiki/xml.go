package wiki

import (
	"encoding/xml"
	"strconv"
	"strings"

	"github.com/ra-bench/ra-gen/guard"
)

// xmlDocument is the wire-format mirror of WikiRA: encoding/xml marshals
// and unmarshals exactly this shape, kept separate from the domain model so
// that WikiRA's field names stay whatever reads best in Go while the XML
// element/attribute names stay whatever the Automata-Wiki format requires.
type xmlDocument struct {
	XMLName     xml.Name          `xml:"register-automaton"`
	Alphabet    xmlAlphabet       `xml:"alphabet"`
	Constants   []xmlRegisterNode `xml:"constants>constant"`
	Globals     []xmlRegisterNode `xml:"globals>variable"`
	Locations   []xmlLocation     `xml:"locations>location"`
	Transitions []xmlTransition   `xml:"transitions>transition"`
}

type xmlAlphabet struct {
	Inputs  []xmlSymbol `xml:"inputs>symbol"`
	Outputs []xmlSymbol `xml:"outputs>symbol"`
}

type xmlSymbol struct {
	Name   string     `xml:"name,attr"`
	Params []xmlParam `xml:"param"`
}

type xmlParam struct {
	Name string `xml:"name,attr"`
	Type string `xml:"type,attr"`
}

type xmlRegisterNode struct {
	Name  string `xml:"name,attr"`
	Type  string `xml:"type,attr"`
	Value string `xml:",chardata"`
}

type xmlLocation struct {
	Name    string `xml:"name,attr"`
	Initial bool   `xml:"initial,attr,omitempty"`
}

type xmlTransition struct {
	From        string          `xml:"from,attr"`
	To          string          `xml:"to,attr"`
	Symbol      string          `xml:"symbol,attr"`
	Params      string          `xml:"params,attr,omitempty"`
	Guard       string          `xml:"guard,omitempty"`
	Assignments []xmlAssignment `xml:"assignments>assign"`
}

type xmlAssignment struct {
	To   string `xml:"to,attr"`
	From string `xml:",chardata"`
}

// MarshalXML serialises w into the Automata-Wiki register-automaton format,
// using the RALib-safe guard dialect as the format requires of emitters.
// Indentation is two spaces.
func MarshalXML(w *WikiRA) ([]byte, error) {
	doc := xmlDocument{
		Alphabet: xmlAlphabet{
			Inputs:  toXMLSymbols(w.Alphabet.Inputs),
			Outputs: toXMLSymbols(w.Alphabet.Outputs),
		},
		Constants:   toXMLRegisterNodes(w.Constants),
		Globals:     toXMLRegisterNodes(w.Globals),
		Locations:   toXMLLocations(w.Locations),
		Transitions: make([]xmlTransition, len(w.Transitions)),
	}
	for i, t := range w.Transitions {
		xt, err := toXMLTransition(t)
		if err != nil {
			return nil, err
		}
		doc.Transitions[i] = xt
	}
	return xml.MarshalIndent(doc, "", "  ")
}

// ParseXML deserialises an Automata-Wiki register-automaton document,
// accepting guards in either the full or the RALib-safe dialect (ParseGuard
// handles both, since the RALib dialect is a syntactic subset).
func ParseXML(data []byte) (*WikiRA, error) {
	var doc xmlDocument
	if err := xml.Unmarshal(data, &doc); err != nil {
		return nil, err
	}
	w := &WikiRA{
		Alphabet: Alphabet{
			Inputs:  fromXMLSymbols(doc.Alphabet.Inputs),
			Outputs: fromXMLSymbols(doc.Alphabet.Outputs),
		},
		Constants: fromXMLRegisterNodes(doc.Constants),
		Globals:   fromXMLRegisterNodes(doc.Globals),
		Locations: fromXMLLocations(doc.Locations),
	}
	transitions := make([]WikiTransition, len(doc.Transitions))
	for i, xt := range doc.Transitions {
		t, err := fromXMLTransition(xt)
		if err != nil {
			return nil, err
		}
		transitions[i] = t
	}
	w.Transitions = transitions
	return w, nil
}

func toXMLSymbols(syms []WikiSymbol) []xmlSymbol {
	out := make([]xmlSymbol, len(syms))
	for i, s := range syms {
		params := make([]xmlParam, len(s.Params))
		for j, p := range s.Params {
			params[j] = xmlParam{Name: p, Type: RegisterKindInt}
		}
		out[i] = xmlSymbol{Name: s.Name, Params: params}
	}
	return out
}

func fromXMLSymbols(syms []xmlSymbol) []WikiSymbol {
	out := make([]WikiSymbol, len(syms))
	for i, s := range syms {
		params := make([]string, len(s.Params))
		for j, p := range s.Params {
			params[j] = p.Name
		}
		out[i] = WikiSymbol{Name: s.Name, Params: params}
	}
	return out
}

func toXMLRegisterNodes(regs []WikiRegister) []xmlRegisterNode {
	out := make([]xmlRegisterNode, len(regs))
	for i, r := range regs {
		out[i] = xmlRegisterNode{Name: r.Name, Type: r.Type, Value: r.Value}
	}
	return out
}

func fromXMLRegisterNodes(nodes []xmlRegisterNode) []WikiRegister {
	out := make([]WikiRegister, len(nodes))
	for i, n := range nodes {
		out[i] = WikiRegister{Name: n.Name, Type: n.Type, Value: n.Value}
	}
	return out
}

func toXMLLocations(locs []WikiLocation) []xmlLocation {
	out := make([]xmlLocation, len(locs))
	for i, l := range locs {
		out[i] = xmlLocation{Name: l.Name, Initial: l.Initial}
	}
	return out
}

func fromXMLLocations(locs []xmlLocation) []WikiLocation {
	out := make([]WikiLocation, len(locs))
	for i, l := range locs {
		out[i] = WikiLocation{Name: l.Name, Initial: l.Initial}
	}
	return out
}

func toXMLTransition(t WikiTransition) (xmlTransition, error) {
	xt := xmlTransition{
		From:   t.From,
		To:     t.To,
		Symbol: t.Symbol,
		Params: strings.Join(t.Params, ","),
	}
	if t.Guard != nil {
		if _, ok := t.Guard.(guard.True[Expression]); !ok {
			simplified := guard.SimplifyInequalities[Expression](t.Guard)
			dnf := guard.ToDisjunctiveNormalForm[Expression](simplified)
			s, err := FormatRALibGuard(dnf)
			if err != nil {
				return xmlTransition{}, err
			}
			xt.Guard = s
		}
	}
	assigns := make([]xmlAssignment, len(t.Assignments))
	for i, a := range t.Assignments {
		assigns[i] = xmlAssignment{To: a.To, From: a.From.String()}
	}
	xt.Assignments = assigns
	return xt, nil
}

func fromXMLTransition(xt xmlTransition) (WikiTransition, error) {
	var params []string
	if xt.Params != "" {
		params = strings.Split(xt.Params, ",")
	}
	g, err := ParseGuard(xt.Guard)
	if err != nil {
		return WikiTransition{}, err
	}
	assigns := make([]Assignment, len(xt.Assignments))
	for i, a := range xt.Assignments {
		assigns[i] = Assignment{To: a.To, From: parseAssignmentSource(a.From)}
	}
	return WikiTransition{
		From:        xt.From,
		To:          xt.To,
		Symbol:      xt.Symbol,
		Params:      params,
		Guard:       g,
		Assignments: assigns,
	}, nil
}

// parseAssignmentSource reads an assignment's source as either an integer
// literal constant or a register/parameter name, the same two leaf forms a
// guard expression may take.
func parseAssignmentSource(src string) Expression {
	if v, err := strconv.ParseInt(src, 10, 64); err == nil {
		return Constant(v)
	}
	return Variable(src)
}
