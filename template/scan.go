package template

import (
	"fmt"
	"reflect"
	"strings"
	"sync"

	"github.com/Konsultn-Engineering/sqlt/cache"
)

// StructMapper returns a RowMapper that scans columns into the fields of a
// struct T. A column matches the field whose `db` tag equals it, or failing
// that the field with the same name ignoring case. Unmatched columns are
// discarded; unmatched fields keep their zero values. Embedded structs are
// flattened. The per-(T, column set) scan plan is memoized in a shared LRU
// cache.
func StructMapper[T any]() RowMapper[T] {
	return func(row Row) (T, error) {
		var out T
		rt := reflect.TypeOf(out)
		if rt == nil || rt.Kind() != reflect.Struct {
			return out, fmt.Errorf("template: StructMapper requires a struct type, got %v", rt)
		}

		cols, err := row.Columns()
		if err != nil {
			return out, err
		}

		key := cache.PlanKey(typeKey(rt), cols)
		v, err := getPlanCache().GetOrCompute(key, func() (any, error) {
			return buildStructPlan(rt, cols)
		})
		if err != nil {
			return out, err
		}
		plan := v.(*structPlan)

		rv := reflect.ValueOf(&out).Elem()
		dests := make([]any, len(cols))
		for i, index := range plan.fields {
			if index == nil {
				dests[i] = new(any) // column has no field; sink it
				continue
			}
			dests[i] = rv.FieldByIndex(index).Addr().Interface()
		}
		if err := row.Scan(dests...); err != nil {
			return out, err
		}
		return out, nil
	}
}

// structPlan records, per column, the index path of the destination field.
// A nil path means the column is discarded.
type structPlan struct {
	fields [][]int
}

// fieldEntry is a candidate destination for a column name. Tagged notes
// whether the name came from an explicit db tag or was case-folded from the
// field name; the index length is the embedding depth.
type fieldEntry struct {
	index  []int
	tagged bool
}

func buildStructPlan(rt reflect.Type, cols []string) (*structPlan, error) {
	byName := make(map[string]fieldEntry)
	collectFields(rt, nil, byName)

	plan := &structPlan{fields: make([][]int, len(cols))}
	for i, col := range cols {
		if entry, ok := byName[strings.ToLower(col)]; ok {
			plan.fields[i] = entry.index
		}
	}
	return plan, nil
}

// collectFields walks rt's exported fields, flattening anonymous embedded
// structs. When two fields resolve to the same name, an explicit db tag wins
// over a case-folded field name, and a shallower field wins over one promoted
// from an embedded struct; among equals the first declared field wins.
func collectFields(rt reflect.Type, prefix []int, byName map[string]fieldEntry) {
	for i := 0; i < rt.NumField(); i++ {
		f := rt.Field(i)
		if f.PkgPath != "" { // unexported
			continue
		}
		index := append(append([]int(nil), prefix...), i)

		if f.Anonymous && f.Type.Kind() == reflect.Struct {
			collectFields(f.Type, index, byName)
			continue
		}

		tag := f.Tag.Get("db")
		if tag == "-" {
			continue
		}
		if comma := strings.IndexByte(tag, ','); comma >= 0 {
			tag = tag[:comma]
		}

		name := strings.ToLower(f.Name)
		tagged := tag != ""
		if tagged {
			name = strings.ToLower(tag)
		}

		if existing, exists := byName[name]; exists {
			if existing.tagged && !tagged {
				continue
			}
			if existing.tagged == tagged && len(existing.index) <= len(index) {
				continue
			}
		}
		byName[name] = fieldEntry{index: index, tagged: tagged}
	}
}

// typeKey fully qualifies rt for cache fingerprinting; the printed short form
// would collide for same-named types in same-named packages. Unnamed struct
// types have neither a name nor a package path, so they keep the printed form.
func typeKey(rt reflect.Type) string {
	if rt.Name() == "" {
		return rt.String()
	}
	return rt.PkgPath() + "." + rt.Name()
}

// Shared plan cache, sized for a typical application's query surface.
const planCacheSize = 512

var (
	planCache     *cache.PlanCache
	planCacheOnce sync.Once
)

func getPlanCache() *cache.PlanCache {
	planCacheOnce.Do(func() {
		planCache = cache.NewPlanCache(planCacheSize)
	})
	return planCache
}
