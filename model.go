package sqlcmd

import (
	"database/sql/driver"
	"reflect"
	"strings"
	"sync"
	"unicode"

	"github.com/startdusk/sqlcmd/internal/errs"
)

const (
	tagName = "column"
)

var valuerType = reflect.TypeOf((*driver.Valuer)(nil)).Elem()

type model struct {
	tableName string
	// 按结构体字段声明的顺序
	fields []*field
}

type field struct {
	// 列名
	colName string
	index   int
}

// registry 缓存结构体的元数据
type registry struct {
	// 用reflect.Type作为key, 同名结构体(如 buyer.User 和 seller.User)也能区分开
	models map[reflect.Type]*model

	// 使用严格的读写锁, 采用double check的读写锁写法就没有线程覆盖的问题
	lock sync.RWMutex
}

var defaultRegistry = newRegistry()

func newRegistry() *registry {
	return &registry{
		models: make(map[reflect.Type]*model, 64),
	}
}

func (r *registry) get(val any) (*model, error) {
	typ := reflect.TypeOf(val)
	r.lock.RLock()
	m, ok := r.models[typ]
	r.lock.RUnlock()
	if ok {
		return m, nil
	}

	r.lock.Lock()
	defer r.lock.Unlock()
	// double check 写法, 保证不重复创建对象
	m, ok = r.models[typ]
	if ok {
		return m, nil
	}

	m, err := r.parseModel(val)
	if err != nil {
		return nil, err
	}
	r.models[typ] = m

	return m, nil
}

// 只支持输入指针类型的结构体
func (r *registry) parseModel(entity any) (*model, error) {
	typ := reflect.TypeOf(entity)

	if typ == nil || typ.Kind() != reflect.Ptr || typ.Elem().Kind() != reflect.Struct {
		return nil, errs.ErrPointerOnly
	}
	typ = typ.Elem()
	numField := typ.NumField()
	fields := make([]*field, 0, numField)
	for i := 0; i < numField; i++ {
		fd := typ.Field(i)
		// 未导出的字段读不到值
		if !fd.IsExported() {
			continue
		}
		pair, err := r.parseTag(fd.Tag)
		if err != nil {
			return nil, err
		}
		colName := pair[tagName]
		if colName == "-" {
			continue
		}
		if colName == "" {
			colName = underscoreName(fd.Name)
		}
		fields = append(fields, &field{
			colName: colName,
			index:   i,
		})
	}

	return &model{
		tableName: underscoreName(typ.Name()),
		fields:    fields,
	}, nil
}

func (r *registry) parseTag(tag reflect.StructTag) (map[string]string, error) {
	ormTag, ok := tag.Lookup("sqlcmd")
	if !ok {
		return nil, nil
	}
	pairs := strings.Split(ormTag, ",")
	tags := make(map[string]string, len(pairs))
	for _, pair := range pairs {
		segs := strings.Split(pair, "=")
		if len(segs) != 2 {
			return nil, errs.NewErrInvalidTagContent(pair)
		}
		tags[segs[0]] = segs[1]
	}
	return tags, nil
}

// 驼峰名字符串转下划线命名
func underscoreName(name string) string {
	runes := []rune(name)
	var buf []rune
	for i, v := range runes {
		if unicode.IsUpper(v) {
			if i != 0 && i < len(runes)-1 && !unicode.IsUpper(runes[i+1]) {
				buf = append(buf, '_')
			}
			buf = append(buf, unicode.ToLower(v))
		} else {
			buf = append(buf, v)
		}
	}
	return string(buf)
}

// Values 把结构体的字段按声明顺序 Set 进来
// 没有指定表名的时候, 使用结构体名的下划线形式作为表名
// 指针字段为 nil 时写入 NULL, entity 本身为 nil 时 Build 返回 ErrNilEntity
//
//	Insert("").Values(&User{ID: 1, FirstName: "Tom"}) => INSERT INTO user (id, first_name) VALUES (1, 'Tom');
func (s *Statement) Values(entity any) *Statement {
	m, err := defaultRegistry.get(entity)
	if err != nil {
		s.err = err
		return s
	}
	val := reflect.ValueOf(entity)
	if val.IsNil() {
		s.err = errs.ErrNilEntity
		return s
	}
	if s.table == "" {
		s.table = m.tableName
	}
	val = val.Elem()
	for _, fd := range m.fields {
		fv := val.Field(fd.index)
		if fv.Kind() == reflect.Ptr {
			if fv.IsNil() {
				s.Set(fd.colName, nil)
				continue
			}
			// *sql.NullString 之类的类型本身就是 driver.Valuer, 不用解引用
			if !fv.Type().Implements(valuerType) {
				fv = fv.Elem()
			}
		}
		s.Set(fd.colName, fv.Interface())
	}
	return s
}
