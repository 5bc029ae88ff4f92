package lower

import (
	"strings"
	"testing"

	"go.uber.org/zap"

	"github.com/novalang/novalua/internal/dtlprint"
	"github.com/novalang/novalua/internal/metadata"
	"github.com/novalang/novalua/internal/parser"
	"github.com/novalang/novalua/internal/semantic"
)

// translate 跑完整条流水线：解析 -> 语义分析 -> 降级 -> 打印，返回输出源码。
// 失败时直接 t.Fatalf，方便每个用例专注断言输出形状。
func translate(t *testing.T, source string) string {
	t.Helper()
	p := parser.New(source, "test.nova")
	file := p.Parse()
	if p.HasErrors() {
		for _, e := range p.Errors() {
			t.Fatalf("parse error: %v", e)
		}
	}
	model, err := semantic.Analyze(file)
	if err != nil {
		t.Fatalf("semantic analysis failed: %v", err)
	}
	tr := New(model, metadata.Empty(), zap.NewNop().Sugar())
	cu, err := tr.Lower(file)
	if err != nil {
		t.Fatalf("lower failed: %v", err)
	}
	return dtlprint.New().Print(cu)
}

func TestLowerSimpleClass(t *testing.T) {
	out := translate(t, `
	public class Point {
		private int $x = 0;
		private int $y = 0;

		public function __construct(int $x, int $y) {
			$this->x = $x;
			$this->y = $y;
		}

		public function getX(): int {
			return $this->x;
		}
	}
	`)

	for _, want := range []string{
		"Point = System.ClassOf(\"Point\")",
		"function Point.__construct(this, x, y)",
		"this.x = x",
		"function Point.getX(this)",
		"return this.x",
	} {
		if !strings.Contains(out, want) {
			t.Errorf("output missing %q, got:\n%s", want, out)
		}
	}
}

func TestLowerInheritance(t *testing.T) {
	out := translate(t, `
	public class Animal {
		public function speak(): string {
			return "...";
		}
	}

	public class Dog extends Animal {
		public function speak(): string {
			return "Woof";
		}
	}
	`)

	if !strings.Contains(out, "Dog = System.ClassOf(\"Dog\", Animal)") {
		t.Errorf("expected Dog to derive from Animal, got:\n%s", out)
	}
}

func TestLowerTernaryBecomesAndOr(t *testing.T) {
	out := translate(t, `
	public class Calc {
		public function sign(int $a): int {
			return $a > 0 ? 1 : -1;
		}
	}
	`)

	if !strings.Contains(out, "a > 0 and 1 or") {
		t.Errorf("expected and/or ternary idiom for a never-falsey then-branch, got:\n%s", out)
	}
}

func TestLowerForeachLoop(t *testing.T) {
	out := translate(t, `
	public class Lister {
		public function sum(array $items): int {
			int $total = 0;
			foreach ($items as $item) {
				$total = $total + $item;
			}
			return $total;
		}
	}
	`)

	if !strings.Contains(out, "for _, item in items do") {
		t.Errorf("expected for-in foreach lowering, got:\n%s", out)
	}
}

func TestLowerWhileAndBreakContinue(t *testing.T) {
	out := translate(t, `
	public class Looper {
		public function firstEven(array $items): int {
			int $i = 0;
			while ($i < 10) {
				if ($i % 2 != 0) {
					$i = $i + 1;
					continue;
				}
				break;
			}
			return $i;
		}
	}
	`)

	if !strings.Contains(out, "while i < 10 do") {
		t.Errorf("expected while loop lowering, got:\n%s", out)
	}
	if !strings.Contains(out, "i % 2 ~= 0") {
		t.Errorf("expected != remapped to ~=, got:\n%s", out)
	}
}

func TestLowerBareStaticFieldIsFullyQualified(t *testing.T) {
	out := translate(t, `
	public class Counter {
		public static int $count = 0;

		public static function increment(): void {
			$count = $count + 1;
		}
	}
	`)

	if !strings.Contains(out, "Counter.count = Counter.count + 1") {
		t.Errorf("expected bare static field access outside a static constructor to be fully qualified, got:\n%s", out)
	}
}

func TestLowerSwitchFallthroughIsRejected(t *testing.T) {
	p := parser.New(`
	public class Grader {
		public function grade(int $score): string {
			switch ($score) {
				case 1:
					string $x = "one";
				case 2:
					return "two";
				default:
					return "other";
			}
		}
	}
	`, "test.nova")
	file := p.Parse()
	if p.HasErrors() {
		for _, e := range p.Errors() {
			t.Fatalf("parse error: %v", e)
		}
	}
	model, err := semantic.Analyze(file)
	if err != nil {
		t.Fatalf("semantic analysis failed: %v", err)
	}
	tr := New(model, metadata.Empty(), zap.NewNop().Sugar())
	if _, err := tr.Lower(file); err == nil {
		t.Fatal("expected switch fallthrough to be rejected as a lowering error, got nil error")
	}
}

func TestLowerIsExprUsesSystemIsInstance(t *testing.T) {
	out := translate(t, `
	public class Checker {
		public function check(object $value): bool {
			return $value is string;
		}
	}
	`)

	if !strings.Contains(out, "System.IsInstance(value, \"string\")") {
		t.Errorf("expected System.IsInstance call, got:\n%s", out)
	}
}
