package scoring

// Module is one of the fixed competency categories a question contributes to.
type Module string

const (
	ModuleCreativity Module = "创造力"
	ModuleTechnical  Module = "技术能力"
	ModuleExecution  Module = "任务理解与执行"
	ModuleSocial     Module = "社交与应变"
	ModuleAnalysis   Module = "问题拆解与分析"
)

// Modules lists every module in display order. The set is exhaustive.
var Modules = []Module{
	ModuleCreativity,
	ModuleTechnical,
	ModuleExecution,
	ModuleSocial,
	ModuleAnalysis,
}

// moduleWeights are the contributions of each module to the 100-point total. They sum to 1.0.
var moduleWeights = map[Module]float64{
	ModuleCreativity: 0.20,
	ModuleTechnical:  0.25,
	ModuleExecution:  0.20,
	ModuleSocial:     0.15,
	ModuleAnalysis:   0.20,
}

// Weight returns the module's share of the total score, or 0 for an unknown module.
func (m Module) Weight() float64 {
	return moduleWeights[m]
}

// IsValid reports whether m is one of the fixed modules.
func (m Module) IsValid() bool {
	_, ok := moduleWeights[m]
	return ok
}

func (m Module) String() string {
	return string(m)
}
